package main

import (
	"fmt"

	tui "github.com/grindlemire/go-tuicore"
	"github.com/grindlemire/go-tuicore/internal/debug"
)

var (
	accent    = tui.MustHexColor("#7aa2f7")
	highlight = tui.MustHexColor("#bb9af7")
	muted     = tui.MustHexColor("#565f89")
)

type dashboard struct {
	cfg      config
	gradient tui.Gradient
}

func newDashboard(cfg config) *dashboard {
	return &dashboard{
		cfg:      cfg,
		gradient: tui.NewGradient(accent, highlight).WithDirection(tui.GradientDiagonalDown),
	}
}

// render draws one frame: a header, two body panels and a footer.
func (d *dashboard) render(f *tui.Frame) {
	rows := f.Split(f.Area(), tui.Vertical(tui.Length(3), tui.Fill(1), tui.Length(1)))
	header, body, footer := rows[0], rows[1], rows[2]

	d.renderHeader(f, header)

	cols := f.Split(body, tui.Horizontal(tui.Percentage(40), tui.Fill(1)).WithSpacing(1))
	err := f.RenderParallel(
		tui.Placement{Area: cols[0], Widget: tui.WidgetFunc(d.renderGradient)},
		tui.Placement{Area: cols[1], Widget: tui.WidgetFunc(d.renderLayouts)},
	)
	if err != nil {
		debug.Log("tuidemo: body render: %v", err)
	}

	f.RenderWidget(
		tui.NewText("press any key to exit", tui.NewStyle().Foreground(muted).Italic()).WithAlignment(tui.AlignRight),
		footer,
	)
}

func (d *dashboard) renderHeader(f *tui.Frame, area tui.Rect) {
	block := tui.NewBlock().
		WithBorders(d.cfg.border).
		WithTitle(" go-tuicore ").
		WithBorderStyle(tui.NewStyle().Foreground(accent)).
		WithPadding(tui.EdgeSymmetric(0, 1))
	f.RenderWidget(block, area)

	status := fmt.Sprintf("border %s · frame %d · %dx%d", d.cfg.borderName, f.Count(), f.Area().Width, f.Area().Height)
	f.RenderWidget(tui.NewText(status, tui.NewStyle().Bold()).WithAlignment(tui.AlignCenter), block.Inner(area))
}

func (d *dashboard) renderGradient(area tui.Rect, buf *tui.Buffer) {
	block := tui.NewBlock().WithBorders(d.cfg.border).WithTitle(" gradient ")
	block.Render(area, buf)
	inner := block.Inner(area)
	buf.FillGradient(inner, d.gradient)
	tui.NewText("漢字 とかな\nwide glyphs", tui.NewStyle().Foreground(tui.Black)).
		WithAlignment(tui.AlignCenter).
		Render(inner.Inset(tui.EdgeSymmetric(max(0, inner.Height/2-1), 0)), buf)
}

// layoutRows lists the constraint sets shown in the layout panel.
var layoutRows = []struct {
	label string
	cons  []tui.Constraint
}{
	{"len pct pct len", []tui.Constraint{tui.Length(10), tui.Percentage(40), tui.Percentage(40), tui.Length(10)}},
	{"min max fill", []tui.Constraint{tui.Min(5), tui.Max(8), tui.Fill(1)}},
	{"thirds", []tui.Constraint{tui.Ratio(1, 3), tui.Ratio(1, 3), tui.Ratio(1, 3)}},
	{"fill 1 2 1", []tui.Constraint{tui.Fill(1), tui.Fill(2), tui.Fill(1)}},
}

func (d *dashboard) renderLayouts(area tui.Rect, buf *tui.Buffer) {
	block := tui.NewBlock().WithBorders(d.cfg.border).WithTitle(" layouts ")
	block.Render(area, buf)
	inner := block.Inner(area)

	rowCons := make([]tui.Constraint, len(layoutRows))
	for i := range rowCons {
		rowCons[i] = tui.Length(2)
	}
	rows := tui.Vertical(rowCons...).Split(inner)
	for i, row := range rows {
		if row.Height < 2 {
			continue
		}
		entry := layoutRows[i]
		buf.SetString(row.X, row.Y, entry.label, tui.NewStyle().Foreground(muted))

		bar := tui.NewRect(row.X, row.Y+1, row.Width, 1)
		segments := tui.Horizontal(entry.cons...).WithSpacing(1).Split(bar)
		for j, seg := range segments {
			color := d.gradient.At(float64(j) / float64(max(1, len(segments)-1)))
			buf.Fill(seg, tui.NewCell(" ", tui.NewStyle().Background(color)))
			buf.SetStringN(seg.X, seg.Y, fmt.Sprint(seg.Width), seg.Width, tui.NewStyle().Foreground(tui.Black))
		}
	}
}
