package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazestroke/pkg/maze"
	"github.com/matzehuels/mazestroke/pkg/walls"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels every node with its column and row.
	Detailed bool
	// Solution highlights the cells and passages of a route.
	Solution []walls.Cell
}

// ToDOT converts the passages of g to Graphviz DOT. Row 0 is drawn at the
// bottom, matching the orientation of the wall renderers.
func ToDOT(g *maze.Grid, opts Options) string {
	onPath := make(map[walls.Cell]int, len(opts.Solution))
	for i, c := range opts.Solution {
		onPath[c] = i
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	if opts.Detailed {
		buf.WriteString("  node [shape=circle, width=0.5, fixedsize=true, fontsize=10, style=filled, fillcolor=white];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.12, color=black];\n")
	}
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	for r := range g.Height {
		for c := range g.Width {
			attrs := []string{fmt.Sprintf("pos=\"%d,%d!\"", c, r)}
			if opts.Detailed {
				attrs = append(attrs, fmt.Sprintf("label=\"%d,%d\"", c, r))
			}
			if _, ok := onPath[walls.Cell{C: c, R: r}]; ok {
				attrs = append(attrs, "color=red", "fillcolor=red")
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c, r), strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		nc, nr, _ := g.Neighbor(e.C, e.R, e.Dir)
		attr := ""
		if onSolution(onPath, walls.Cell{C: e.C, R: e.R}, walls.Cell{C: nc, R: nr}) {
			attr = " [color=red]"
		}
		fmt.Fprintf(&buf, "  %q -- %q%s;\n", nodeID(e.C, e.R), nodeID(nc, nr), attr)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c, r int) string { return fmt.Sprintf("c%d_%d", c, r) }

// onSolution reports whether a and b are consecutive on the route.
func onSolution(onPath map[walls.Cell]int, a, b walls.Cell) bool {
	i, ok := onPath[a]
	if !ok {
		return false
	}
	j, ok := onPath[b]
	return ok && (i-j == 1 || j-i == 1)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
