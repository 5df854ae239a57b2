// Package tui is the rendering core of a terminal user interface.
//
// Widgets draw into a Buffer, a grid of styled Cells. A Terminal keeps the
// buffer last shown on screen, diffs each new frame against it and sends only
// the changed cells to a Backend. Areas are divided with constraint layouts
// (Length, Percentage, Ratio, Min, Max, Fill) solved by Solve, optionally
// memoized by a LayoutCache.
//
//	term, err := tui.NewTerminal(tui.NewANSIBackend(os.Stdout))
//	if err != nil {
//		return err
//	}
//	_, err = term.Draw(ctx, func(f *tui.Frame) {
//		rows := f.Split(f.Area(), tui.Vertical(tui.Length(3), tui.Fill(1)))
//		f.RenderWidget(tui.NewBlock().WithTitle("hello"), rows[0])
//	})
package tui
