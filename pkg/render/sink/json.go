package sink

import (
	"encoding/json"

	"github.com/matzehuels/mazestroke/pkg/render"
	"github.com/matzehuels/mazestroke/pkg/stroke"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	seed     uint64
	solution []walls.Cell
}

// WithJSONSeed records the generation seed so the maze can be reproduced.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONSolution includes the route returned by [walls.Solve].
func WithJSONSolution(path []walls.Cell) JSONOption {
	return func(r *jsonRenderer) { r.solution = path }
}

type jsonOutput struct {
	Frame     render.Frame `json:"frame"`
	Origin    [2]int       `json:"origin"`
	Seed      uint64       `json:"seed,omitempty"`
	Segments  int          `json:"segments"`
	Polylines [][][2]int   `json:"polylines"`
	Entrance  [2][2]int    `json:"entrance"`
	Exit      [2][2]int    `json:"exit"`
	Solution  [][2]int     `json:"solution,omitempty"`
}

// RenderJSON serializes lines in lattice coordinates together with the frame
// needed to place them.
func RenderJSON(f render.Frame, lines []stroke.Polyline, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	ox, oy := f.Origin()
	out := jsonOutput{
		Frame:     f,
		Origin:    [2]int{ox, oy},
		Seed:      r.seed,
		Segments:  len(stroke.Content(lines)),
		Polylines: make([][][2]int, 0, len(lines)),
		Entrance:  segmentPair(walls.Entrance(f.Width, f.Height)),
		Exit:      segmentPair(walls.Exit(f.Width, f.Height)),
	}
	for _, l := range lines {
		pts := make([][2]int, len(l))
		for i, p := range l {
			pts[i] = [2]int{p.X, p.Y}
		}
		out.Polylines = append(out.Polylines, pts)
	}
	for _, c := range r.solution {
		out.Solution = append(out.Solution, [2]int{c.C, c.R})
	}
	return json.MarshalIndent(out, "", "  ")
}

func segmentPair(s walls.Segment) [2][2]int {
	return [2][2]int{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}}
}
