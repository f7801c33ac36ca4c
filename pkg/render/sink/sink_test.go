package sink

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/maze"
	"github.com/matzehuels/mazestroke/pkg/random"
	"github.com/matzehuels/mazestroke/pkg/render"
	"github.com/matzehuels/mazestroke/pkg/stroke"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// singleCell is the merged output of a 1x1 maze: its north and south walls.
var singleCell = []stroke.Polyline{
	{{X: 0, Y: 0}, {X: 1, Y: 0}},
	{{X: 0, Y: 1}, {X: 1, Y: 1}},
}

func buildMaze(t *testing.T, w, h int) ([]stroke.Polyline, []walls.Cell) {
	t.Helper()
	g, err := maze.Generate(w, h, random.New(11))
	if err != nil {
		t.Fatal(err)
	}
	segs, err := walls.Extract(g)
	if err != nil {
		t.Fatal(err)
	}
	path, err := walls.Solve(w, h, segs)
	if err != nil {
		t.Fatal(err)
	}
	return stroke.Merge(segs), path
}

func TestRenderSVG(t *testing.T) {
	f := render.Frame{Width: 1, Height: 1, CellSize: 10, Margin: 10}
	svg := string(RenderSVG(f, singleCell))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 30 30" width="30" height="30">`) {
		t.Errorf("unexpected header: %s", strings.SplitN(svg, "\n", 2)[0])
	}
	for _, want := range []string{`<path d="M10 20 L20 20"/>`, `<path d="M10 10 L20 10"/>`} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %s in\n%s", want, svg)
		}
	}
	if strings.Contains(svg, "solution") {
		t.Error("solution drawn without WithSolution")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	lines, path := buildMaze(t, 6, 4)
	svg := string(RenderSVG(render.NewFrame(6, 4, 15), lines,
		WithStroke("navy"), WithStrokeWidth(1.5), WithBackground(""), WithSolution(path)))

	if got := strings.Count(svg, `<path d=`); got != len(lines) {
		t.Errorf("%d wall paths, want %d", got, len(lines))
	}
	if !strings.Contains(svg, `stroke="navy" stroke-width="1.5"`) {
		t.Error("stroke options not applied")
	}
	if strings.Contains(svg, "<rect") {
		t.Error("empty background should skip the rect")
	}
	if !strings.Contains(svg, `class="solution"`) {
		t.Error("solution path missing")
	}
}

func TestRenderPNG(t *testing.T) {
	lines, path := buildMaze(t, 5, 3)
	f := render.NewFrame(5, 3, 10)

	tests := []struct {
		name         string
		opts         []PNGOption
		wantW, wantH int
	}{
		{"default", nil, 70, 50},
		{"scaled", []PNGOption{WithScale(2)}, 140, 100},
		{"plain", []PNGOption{WithoutArrows(), WithLineWidth(1), WithPNGSolution(path)}, 70, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(f, lines, tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderPNGArrows(t *testing.T) {
	lines, _ := buildMaze(t, 5, 3)
	f := render.NewFrame(5, 3, 10)

	tests := []struct {
		name   string
		scale  float64
		opts   []PNGOption
		arrows bool
	}{
		{"default", 1, nil, true},
		{"scaled", 3, []PNGOption{WithScale(3)}, true},
		{"without arrows", 1, []PNGOption{WithoutArrows()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(f, lines, tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG() error: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			margin := int(float64(f.Margin) * tt.scale)
			right := img.Bounds().Dx() - margin
			for i, a := range arrowPlacements(f, tt.scale) {
				center := a.pos.Add(image.Pt(a.size/2, a.size/2))
				if i == 0 && center.X >= margin {
					t.Errorf("entrance arrow at x=%d, want inside left margin %d", center.X, margin)
				}
				if i == 1 && center.X < right {
					t.Errorf("exit arrow at x=%d, want inside right margin from %d", center.X, right)
				}

				got := img.At(center.X, center.Y)
				want := a.col
				if !tt.arrows {
					want = color.White
				}
				if !colorNear(got, want) {
					t.Errorf("pixel %v = %v, want %v", center, got, want)
				}
			}
		})
	}
}

func colorNear(a, b color.Color) bool {
	const tol = 0x0800
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	for _, d := range []int64{int64(r1) - int64(r2), int64(g1) - int64(g2), int64(b1) - int64(b2), int64(a1) - int64(a2)} {
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}

func TestRenderPNGInvalidScale(t *testing.T) {
	_, err := RenderPNG(render.NewFrame(1, 1, 10), singleCell, WithScale(0))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderJSON(t *testing.T) {
	f := render.Frame{Width: 1, Height: 1, CellSize: 15, Margin: 15}
	data, err := RenderJSON(f, singleCell, WithJSONSeed(42), WithJSONSolution([]walls.Cell{{C: 0, R: 0}}))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Frame != f {
		t.Errorf("frame = %+v, want %+v", out.Frame, f)
	}
	if out.Origin != [2]int{-8, -8} {
		t.Errorf("origin = %v, want [-8 -8]", out.Origin)
	}
	if out.Seed != 42 || out.Segments != 2 || len(out.Polylines) != 2 {
		t.Errorf("seed=%d segments=%d polylines=%d", out.Seed, out.Segments, len(out.Polylines))
	}
	if out.Entrance != [2][2]int{{0, 0}, {0, 1}} || out.Exit != [2][2]int{{1, 0}, {1, 1}} {
		t.Errorf("entrance=%v exit=%v", out.Entrance, out.Exit)
	}
	if len(out.Solution) != 1 {
		t.Errorf("solution = %v", out.Solution)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(render.NewFrame(1, 1, 1), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"polylines": []`)) {
		t.Errorf("empty polylines should encode as []:\n%s", data)
	}
}

func TestRenderText(t *testing.T) {
	got := string(RenderText(render.NewFrame(1, 1, 15), singleCell))
	want := "╶───╴\n     \n╶───╴\n"
	if got != want {
		t.Errorf("RenderText() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderTextSolution(t *testing.T) {
	lines, path := buildMaze(t, 4, 3)
	got := string(RenderText(render.NewFrame(4, 3, 15), lines, WithTextSolution(path)))
	if n := strings.Count(got, "•"); n != len(path) {
		t.Errorf("%d marked cells, want %d", n, len(path))
	}
	if n := strings.Count(got, "\n"); n != 2*3+1 {
		t.Errorf("%d lines, want 7", n)
	}
}
