package walls

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/mazestroke/pkg/errors"
	"github.com/matzehuels/mazestroke/pkg/maze"
)

// Cell addresses a grid cell by column and row.
type Cell struct {
	C int `json:"c"`
	R int `json:"r"`
}

// Solve finds the shortest walk from the entrance cell (0, height/2) to the
// exit cell (width-1, height/2) that crosses no segment of segs. It works on
// the wall representation alone, so a successful solve confirms that the
// extracted walls describe a connected maze.
//
// A maze without a route fails with NOT_FOUND.
func Solve(width, height int, segs []Segment) ([]Cell, error) {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	walls := mapset.New[Segment]()
	for _, s := range segs {
		walls.Put(s)
	}

	start := Cell{0, height / 2}
	goal := Cell{width - 1, height / 2}

	prev := make(map[Cell]Cell, width*height)
	prev[start] = start
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			break
		}
		for _, d := range maze.Directions {
			dc, dr := d.Delta()
			next := Cell{cur.C + dc, cur.R + dr}
			if next.C < 0 || next.C >= width || next.R < 0 || next.R >= height {
				continue
			}
			if walls.Has(Side(cur.C, cur.R, d)) {
				continue
			}
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}

	if _, ok := prev[goal]; !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no route from %v to %v", start, goal)
	}

	var path []Cell
	for c := goal; ; c = prev[c] {
		path = append(path, c)
		if c == start {
			break
		}
	}
	slices.Reverse(path)
	return path, nil
}
