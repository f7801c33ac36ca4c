package walls

import "testing"

func TestNewSegmentCanonical(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want Segment
	}{
		{"ordered", Point{0, 0}, Point{1, 0}, Segment{Point{0, 0}, Point{1, 0}}},
		{"reversed", Point{1, 0}, Point{0, 0}, Segment{Point{0, 0}, Point{1, 0}}},
		{"vertical reversed", Point{3, 5}, Point{3, 4}, Segment{Point{3, 4}, Point{3, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSegment(tt.p, tt.q); got != tt.want {
				t.Errorf("NewSegment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntranceExit(t *testing.T) {
	tests := []struct {
		w, h           int
		entrance, exit Segment
	}{
		{1, 1, Segment{Point{0, 0}, Point{0, 1}}, Segment{Point{1, 0}, Point{1, 1}}},
		{4, 5, Segment{Point{0, 2}, Point{0, 3}}, Segment{Point{4, 2}, Point{4, 3}}},
		{3, 4, Segment{Point{0, 2}, Point{0, 3}}, Segment{Point{3, 2}, Point{3, 3}}},
	}
	for _, tt := range tests {
		if got := Entrance(tt.w, tt.h); got != tt.entrance {
			t.Errorf("Entrance(%d,%d) = %v, want %v", tt.w, tt.h, got, tt.entrance)
		}
		if got := Exit(tt.w, tt.h); got != tt.exit {
			t.Errorf("Exit(%d,%d) = %v, want %v", tt.w, tt.h, got, tt.exit)
		}
	}
}

func TestExpectedCount(t *testing.T) {
	tests := []struct{ w, h, want int }{
		{1, 1, 2},
		{2, 1, 4},
		{40, 20, 40*21 + 20*41 - 799 - 2},
	}
	for _, tt := range tests {
		if got := ExpectedCount(tt.w, tt.h); got != tt.want {
			t.Errorf("ExpectedCount(%d,%d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}
