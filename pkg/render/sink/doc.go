// Package sink writes merged maze polylines in the supported output formats.
//
// Every renderer takes a [render.Frame] and the polylines produced by
// [stroke.Merge] and is configured with functional options:
//
//   - [RenderSVG]: one path per polyline, y axis growing upward
//   - [RenderPNG]: rasterized with fogleman/gg, with entrance and exit arrows
//   - [RenderJSON]: frame, polylines and optional solution as JSON
//   - [RenderText]: box-drawing characters for terminals
//
// The vector and raster sinks drive the polylines through [render.Draw], so
// they draw the same pen strokes a plotter would.
//
// [render.Frame]: github.com/matzehuels/mazestroke/pkg/render.Frame
// [render.Draw]: github.com/matzehuels/mazestroke/pkg/render.Draw
// [stroke.Merge]: github.com/matzehuels/mazestroke/pkg/stroke.Merge
package sink
