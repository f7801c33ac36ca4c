package random

import "fmt"

// Script is a deterministic [Source] that replays prepared values. It is
// meant for tests that need to pin the start cell and every direction order.
//
// Ints are returned by IntN in order (each reduced modulo n). Perms are
// consumed by Shuffle: each permutation lists, for every output position,
// the input index that should land there. When either queue runs dry the
// script falls back to 0 and the identity order.
type Script struct {
	Ints  []int
	Perms [][]int
}

// IntN returns the next scripted integer modulo n.
func (s *Script) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return ((v % n) + n) % n
}

// Shuffle applies the next scripted permutation through swap.
func (s *Script) Shuffle(n int, swap func(i, j int)) {
	if len(s.Perms) == 0 {
		return
	}
	perm := s.Perms[0]
	s.Perms = s.Perms[1:]
	if len(perm) != n {
		panic(fmt.Sprintf("random: scripted permutation has %d entries, want %d", len(perm), n))
	}

	// pos[v] is the current slot of original element v; at[i] is the
	// original element currently in slot i.
	pos := make([]int, n)
	at := make([]int, n)
	for i := range n {
		pos[i] = i
		at[i] = i
	}
	for i, want := range perm {
		j := pos[want]
		if i == j {
			continue
		}
		swap(i, j)
		at[i], at[j] = at[j], at[i]
		pos[at[i]] = i
		pos[at[j]] = j
	}
}

var _ Source = (*Script)(nil)
