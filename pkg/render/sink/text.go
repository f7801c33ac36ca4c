package sink

import (
	"bytes"

	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/mazestroke/pkg/render"
	"github.com/matzehuels/mazestroke/pkg/stroke"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// corners indexes box-drawing glyphs by the walls meeting at a lattice point:
// bit 0 up, bit 1 down, bit 2 left, bit 3 right.
var corners = [16]string{
	" ", "╵", "╷", "│", "╴", "┘", "┐", "┤",
	"╶", "└", "┌", "├", "─", "┴", "┬", "┼",
}

// TextOption configures terminal rendering.
type TextOption func(*textRenderer)

type textRenderer struct {
	solution []walls.Cell
}

// WithTextSolution marks the cells of a route.
func WithTextSolution(path []walls.Cell) TextOption {
	return func(r *textRenderer) { r.solution = path }
}

// RenderText draws lines with box-drawing characters, three columns and one
// line per cell. Lattice row Height is printed first so the picture matches
// the upward y axis of the other sinks.
func RenderText(f render.Frame, lines []stroke.Polyline, opts ...TextOption) []byte {
	var r textRenderer
	for _, opt := range opts {
		opt(&r)
	}

	set := mapset.New[walls.Segment]()
	for _, s := range stroke.Content(lines) {
		set.Put(s)
	}
	onPath := mapset.New[walls.Cell]()
	for _, c := range r.solution {
		onPath.Put(c)
	}

	has := func(x1, y1, x2, y2 int) bool {
		return set.Has(walls.NewSegment(walls.Point{X: x1, Y: y1}, walls.Point{X: x2, Y: y2}))
	}

	var buf bytes.Buffer
	for y := f.Height; y >= 0; y-- {
		for x := 0; x <= f.Width; x++ {
			idx := 0
			if has(x, y, x, y+1) {
				idx |= 1
			}
			if has(x, y-1, x, y) {
				idx |= 2
			}
			if has(x-1, y, x, y) {
				idx |= 4
			}
			if has(x, y, x+1, y) {
				idx |= 8
			}
			buf.WriteString(corners[idx])
			if x < f.Width {
				if has(x, y, x+1, y) {
					buf.WriteString("───")
				} else {
					buf.WriteString("   ")
				}
			}
		}
		buf.WriteByte('\n')
		if y == 0 {
			break
		}

		// Cell row between lattice rows y-1 and y.
		row := y - 1
		for x := 0; x <= f.Width; x++ {
			if has(x, row, x, row+1) {
				buf.WriteString("│")
			} else {
				buf.WriteString(" ")
			}
			if x < f.Width {
				if onPath.Has(walls.Cell{C: x, R: row}) {
					buf.WriteString(" • ")
				} else {
					buf.WriteString("   ")
				}
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
