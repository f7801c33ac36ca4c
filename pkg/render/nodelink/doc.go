// Package nodelink renders the passage tree of a maze as a node-link diagram.
//
// Every cell becomes a node pinned at its grid position and every passage
// becomes an undirected edge, so the drawing shows the spanning tree that
// the walls are the complement of.
//
//	dot := nodelink.ToDOT(grid, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// Rendering uses Graphviz (via goccy/go-graphviz) with the neato engine so
// that the pinned positions are honoured.
package nodelink
