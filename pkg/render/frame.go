package render

import (
	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// Frame describes how a Width×Height maze is scaled and centered.
type Frame struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	CellSize int `json:"cell_size"`
	Margin   int `json:"margin"`
}

// NewFrame returns a frame with a one-cell margin.
func NewFrame(width, height, cellSize int) Frame {
	return Frame{Width: width, Height: height, CellSize: cellSize, Margin: cellSize}
}

// Validate checks the frame dimensions.
func (f Frame) Validate() error {
	if err := errors.ValidateDimensions(f.Width, f.Height); err != nil {
		return err
	}
	if err := errors.ValidateCellSize(f.CellSize); err != nil {
		return err
	}
	if f.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "margin cannot be negative, got %d", f.Margin)
	}
	return nil
}

// Origin returns the canvas position of lattice point (0, 0).
func (f Frame) Origin() (x, y int) {
	return floorDiv(-(f.Width * f.CellSize), 2), floorDiv(-(f.Height * f.CellSize), 2)
}

// Place returns the canvas position of lattice point p.
func (f Frame) Place(p walls.Point) (x, y float64) {
	return f.At(float64(p.X), float64(p.Y))
}

// At returns the canvas position of a fractional lattice coordinate, such as
// a cell center.
func (f Frame) At(lx, ly float64) (x, y float64) {
	ox, oy := f.Origin()
	cs := float64(f.CellSize)
	return float64(ox) + lx*cs, float64(oy) + ly*cs
}

// Size returns the raster size in pixels, margins included.
func (f Frame) Size() (w, h int) {
	return f.Width*f.CellSize + 2*f.Margin, f.Height*f.CellSize + 2*f.Margin
}

// Raster converts a canvas position into top-left based pixel coordinates
// with y growing downward.
func (f Frame) Raster(x, y float64) (px, py float64) {
	ox, oy := f.Origin()
	top := float64(oy + f.Height*f.CellSize)
	return x - float64(ox) + float64(f.Margin), top - y + float64(f.Margin)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
