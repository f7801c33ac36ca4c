package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/yalue/image_utils"

	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/render"
	"github.com/matzehuels/mazestroke/pkg/stroke"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

var (
	entranceColor = color.RGBA{40, 180, 70, 255}
	exitColor     = color.RGBA{100, 120, 255, 255}
	solutionColor = color.RGBA{220, 40, 40, 200}
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale     float64
	lineWidth float64
	arrows    bool
	solution  []walls.Cell
}

// WithScale sets the PNG scale factor (default 1).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithLineWidth sets the wall width in unscaled pixels (default 2).
func WithLineWidth(w float64) PNGOption {
	return func(r *pngRenderer) { r.lineWidth = w }
}

// WithoutArrows leaves out the entrance and exit markers.
func WithoutArrows() PNGOption {
	return func(r *pngRenderer) { r.arrows = false }
}

// WithPNGSolution overlays the route returned by [walls.Solve].
func WithPNGSolution(path []walls.Cell) PNGOption {
	return func(r *pngRenderer) { r.solution = path }
}

// RenderPNG rasterizes lines. Entrance and exit arrows are drawn in the
// margin, so they only appear when the margin is at least half a cell.
func RenderPNG(f render.Frame, lines []stroke.Polyline, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1, lineWidth: 2, arrows: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", r.scale)
	}

	w, h := f.Size()
	dc := gg.NewContext(int(float64(w)*r.scale), int(float64(h)*r.scale))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(r.scale, r.scale)

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(r.lineWidth)
	dc.SetLineCapSquare()
	render.Draw(&ggPen{dc: dc, f: f}, f, lines)
	dc.Stroke()

	if len(r.solution) > 0 {
		dc.SetColor(solutionColor)
		dc.SetLineWidth(max(r.lineWidth, float64(f.CellSize)/4))
		dc.SetLineCapRound()
		dc.SetLineJoinRound()
		render.DrawPath(&ggPen{dc: dc, f: f}, f, r.solution)
		dc.Stroke()
	}

	if r.arrows && f.Margin*2 >= f.CellSize {
		dc.Identity()
		for _, a := range arrowPlacements(f, r.scale) {
			dc.DrawImage(image_utils.ResizeImage(arrowSprite(a.col), a.size, a.size), a.pos.X, a.pos.Y)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// ggPen adapts a gg context to the pen contract.
type ggPen struct {
	dc   *gg.Context
	f    render.Frame
	down bool
}

func (p *ggPen) PenUp()   { p.down = false }
func (p *ggPen) PenDown() { p.down = true }

func (p *ggPen) MoveTo(x, y float64) {
	px, py := p.f.Raster(x, y)
	if p.down {
		p.dc.LineTo(px, py)
		return
	}
	p.dc.MoveTo(px, py)
}

// arrow is one entrance or exit marker in raster pixels.
type arrow struct {
	pos  image.Point // top-left corner
	size int
	col  color.Color
}

// arrowPlacements returns a marker left of the entrance pointing in and one
// right of the exit pointing out.
func arrowPlacements(f render.Frame, scale float64) []arrow {
	size := max(int(float64(f.CellSize)*scale*0.8), 4)
	place := func(seg walls.Segment, left bool) image.Point {
		x, y := f.Raster(f.At(float64(seg.A.X), (float64(seg.A.Y)+float64(seg.B.Y))/2))
		cx, cy := int(x*scale), int(y*scale)
		if left {
			return image.Pt(cx-size-1, cy-size/2)
		}
		return image.Pt(cx+1, cy-size/2)
	}
	return []arrow{
		{place(walls.Entrance(f.Width, f.Height), true), size, entranceColor},
		{place(walls.Exit(f.Width, f.Height), false), size, exitColor},
	}
}

// arrowSprite draws a right-pointing arrow on a transparent 32px square.
func arrowSprite(col color.Color) image.Image {
	const n = 32
	dc := gg.NewContext(n, n)
	dc.SetColor(col)
	dc.DrawRectangle(0, 12, 20, 8)
	dc.MoveTo(18, 4)
	dc.LineTo(n, n/2)
	dc.LineTo(18, 28)
	dc.ClosePath()
	dc.Fill()
	return dc.Image()
}
