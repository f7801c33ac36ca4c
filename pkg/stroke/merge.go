package stroke

import (
	"cmp"
	"slices"

	"github.com/matzehuels/mazestroke/pkg/walls"
)

// Merge joins segs into polylines. Every input segment appears in exactly one
// polyline. An empty input yields an empty, non-nil result.
func Merge(segs []walls.Segment) []Polyline {
	chains := make([]Polyline, len(segs))
	for i, s := range segs {
		chains[i] = Polyline{s.A, s.B}
	}
	return mergeOwned(chains)
}

// MergeChains joins arbitrary chains the same way [Merge] joins segments.
// The input is not modified. Feeding the output of [Merge] back in yields the
// same number of polylines.
func MergeChains(chains []Polyline) []Polyline {
	owned := make([]Polyline, len(chains))
	for i, c := range chains {
		owned[i] = slices.Clone(c)
	}
	return mergeOwned(owned)
}

func mergeOwned(pending []Polyline) []Polyline {
	if len(pending) == 0 {
		return []Polyline{}
	}
	for {
		before := len(pending)
		merged := []Polyline{pending[0]}
		for _, ch := range pending[1:] {
			if !attach(merged, ch) {
				merged = append(merged, ch)
			}
		}
		pending = merged
		if len(merged) == before {
			break
		}
	}
	slices.SortStableFunc(pending, func(a, b Polyline) int {
		return cmp.Compare(len(b), len(a))
	})
	return pending
}

// attach glues ch onto the first chain of merged that shares an end point
// with it and reports whether it found one. The shared point appears once in
// the joined chain.
func attach(merged []Polyline, ch Polyline) bool {
	head, tail := ch.First(), ch.Last()
	for i, m := range merged {
		switch {
		case head == m.First():
			merged[i] = slices.Concat(reversed(ch[1:]), m)
		case head == m.Last():
			merged[i] = slices.Concat(m, ch[1:])
		case tail == m.First():
			merged[i] = slices.Concat(ch[:len(ch)-1], m)
		case tail == m.Last():
			merged[i] = slices.Concat(m, reversed(ch[:len(ch)-1]))
		default:
			continue
		}
		return true
	}
	return false
}

func reversed(p Polyline) Polyline {
	r := slices.Clone(p)
	slices.Reverse(r)
	return r
}
