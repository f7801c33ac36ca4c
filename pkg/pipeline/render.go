package pipeline

import (
	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/render"
	"github.com/matzehuels/mazestroke/pkg/render/nodelink"
	"github.com/matzehuels/mazestroke/pkg/render/sink"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// Render generates output artifacts in the requested formats. opts must have
// been through [Options.ValidateForRender].
func Render(l Layout, opts Options) (map[string][]byte, error) {
	f := render.NewFrame(l.Width, l.Height, opts.CellSize)
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var solution []walls.Cell
	if opts.Solution {
		solution = l.Solution
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(f, l.Polylines, sink.WithSolution(solution))
		case FormatPNG:
			data, err = sink.RenderPNG(f, l.Polylines, sink.WithPNGSolution(solution))
		case FormatJSON:
			data, err = sink.RenderJSON(f, l.Polylines, sink.WithJSONSeed(l.Seed), sink.WithJSONSolution(solution))
		case FormatText:
			data = sink.RenderText(f, l.Polylines, sink.WithTextSolution(solution))
		case FormatDOT:
			data = []byte(nodelink.ToDOT(l.Grid(), nodelink.Options{Solution: solution}))
		case FormatTree:
			data, err = nodelink.RenderSVG(nodelink.ToDOT(l.Grid(), nodelink.Options{Solution: solution}))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
