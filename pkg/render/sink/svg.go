package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/mazestroke/pkg/render"
	"github.com/matzehuels/mazestroke/pkg/stroke"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	stroke      string
	strokeWidth float64
	background  string
	solution    []walls.Cell
}

func WithStroke(color string) SVGOption  { return func(r *svgRenderer) { r.stroke = color } }
func WithStrokeWidth(w float64) SVGOption { return func(r *svgRenderer) { r.strokeWidth = w } }
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithSolution overlays the route returned by [walls.Solve].
func WithSolution(path []walls.Cell) SVGOption {
	return func(r *svgRenderer) { r.solution = path }
}

// RenderSVG draws lines as an SVG document sized by f.
func RenderSVG(f render.Frame, lines []stroke.Polyline, opts ...SVGOption) []byte {
	r := svgRenderer{stroke: "black", strokeWidth: 2, background: "white"}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := f.Size()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		w, h, w, h)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}

	fmt.Fprintf(&buf, `  <g class="walls" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="square" stroke-linejoin="miter">`+"\n",
		r.stroke, fmtNum(r.strokeWidth))
	for _, l := range lines {
		p := newSVGPath(f)
		render.Draw(p, f, []stroke.Polyline{l})
		fmt.Fprintf(&buf, `    <path d="%s"/>`+"\n", p.String())
	}
	buf.WriteString("  </g>\n")

	if len(r.solution) > 0 {
		p := newSVGPath(f)
		render.DrawPath(p, f, r.solution)
		fmt.Fprintf(&buf, `  <path class="solution" d="%s" fill="none" stroke="red" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round" stroke-opacity="0.7"/>`+"\n",
			p.String(), fmtNum(max(r.strokeWidth, float64(f.CellSize)/4)))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// svgPath turns pen moves into SVG path data.
type svgPath struct {
	f    render.Frame
	buf  bytes.Buffer
	down bool
}

func newSVGPath(f render.Frame) *svgPath { return &svgPath{f: f} }

func (p *svgPath) PenUp()   { p.down = false }
func (p *svgPath) PenDown() { p.down = true }

func (p *svgPath) MoveTo(x, y float64) {
	px, py := p.f.Raster(x, y)
	cmd := "M"
	if p.down {
		cmd = "L"
	}
	if p.buf.Len() > 0 {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, "%s%s %s", cmd, fmtNum(px), fmtNum(py))
}

func (p *svgPath) String() string { return p.buf.String() }

func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
