package tui

import "fmt"

// CellUpdate is one write instruction for a backend: draw Cell at (X, Y).
type CellUpdate struct {
	X, Y int
	Cell Cell
}

// Differ computes the updates that turn one frame into the next.
type Differ struct {
	// GapThreshold lets short runs of unchanged cells between two changes on
	// the same row be rewritten instead of skipped, so a backend can keep
	// writing without a cursor jump. Zero emits only changed cells.
	GapThreshold int
}

// Diff returns the minimal updates that turn prev into cur. It is shorthand
// for Differ{}.Diff(prev, cur).
func Diff(prev, cur *Buffer) []CellUpdate {
	return Differ{}.Diff(prev, cur)
}

// Diff compares prev and cur cell by cell and returns an update for every
// position whose cell differs, in row-major order, carrying cur's cell.
//
// A wide glyph is always emitted together with its continuation cells,
// adjacent in the result; if only a continuation changed, the glyph that
// owns it is emitted as well.
//
// Panics if the buffers cover different areas.
func (d Differ) Diff(prev, cur *Buffer) []CellUpdate {
	if prev.Area != cur.Area {
		panic(fmt.Sprintf("tui: diff of buffers with different areas %+v and %+v", prev.Area, cur.Area))
	}

	var updates []CellUpdate
	width := cur.Area.Width
	if width == 0 {
		return updates
	}
	marked := make([]bool, width)

	for y := 0; y < cur.Area.Height; y++ {
		row := y * width
		prevRow := prev.Content[row : row+width]
		curRow := cur.Content[row : row+width]

		changed := false
		for x := range marked {
			marked[x] = prevRow[x] != curRow[x]
			changed = changed || marked[x]
		}
		if !changed {
			continue
		}

		markGlyphs(curRow, marked)
		if d.GapThreshold > 0 {
			bridgeGaps(curRow, marked, d.GapThreshold)
		}

		for x, m := range marked {
			if m {
				updates = append(updates, CellUpdate{
					X:    cur.Area.X + x,
					Y:    cur.Area.Y + y,
					Cell: curRow[x],
				})
			}
		}
	}
	return updates
}

// markGlyphs widens every marked position to the whole glyph covering it.
func markGlyphs(row []Cell, marked []bool) {
	for x := 0; x < len(row); x++ {
		if !marked[x] {
			continue
		}
		start := x
		for start > 0 && row[start].Skip {
			start--
		}
		end := start + 1
		for end < len(row) && row[end].Skip {
			end++
		}
		for i := start; i < end; i++ {
			marked[i] = true
		}
		x = end - 1
	}
}

// bridgeGaps marks runs of at most threshold unmarked cells lying between
// two marked cells, unless the run would split a glyph.
func bridgeGaps(row []Cell, marked []bool, threshold int) {
	last := -1
	for x := range row {
		if !marked[x] {
			continue
		}
		if last >= 0 && x-last-1 > 0 && x-last-1 <= threshold && !hasContinuation(row[last+1:x]) {
			for i := last + 1; i < x; i++ {
				marked[i] = true
			}
		}
		last = x
	}
}

func hasContinuation(cells []Cell) bool {
	for _, c := range cells {
		if c.Skip {
			return true
		}
	}
	return false
}

// Apply writes updates into buf verbatim. Panics if an update falls
// outside the buffer.
func Apply(buf *Buffer, updates []CellUpdate) {
	for _, u := range updates {
		buf.Content[buf.Index(u.X, u.Y)] = u.Cell
	}
}

// FullUpdate returns an update for every cell of buf, used when the screen
// must be redrawn from scratch.
func FullUpdate(buf *Buffer) []CellUpdate {
	updates := make([]CellUpdate, len(buf.Content))
	for i, c := range buf.Content {
		x, y := buf.PosOf(i)
		updates[i] = CellUpdate{X: x, Y: y, Cell: c}
	}
	return updates
}
