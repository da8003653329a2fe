package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
		{None, None},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.want {
				t.Errorf("Opposite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectangleEdges(t *testing.T) {
	r := Rectangle{X: 10, Y: 20, Width: 5, Height: 8}

	if got := r.Left(); got != 10 {
		t.Errorf("Left() = %d, want 10", got)
	}
	if got := r.Top(); got != 20 {
		t.Errorf("Top() = %d, want 20", got)
	}
	if got := r.Right(); got != 15 {
		t.Errorf("Right() = %d, want 15", got)
	}
	if got := r.Bottom(); got != 28 {
		t.Errorf("Bottom() = %d, want 28", got)
	}
}

func TestRectangleContainsOffset(t *testing.T) {
	r := Rectangle{X: 10, Y: 10, Width: 10, Height: 10}

	tests := []struct {
		p      Point
		offset int
		want   bool
	}{
		{Point{15, 15}, 0, true},
		{Point{10, 10}, 0, true},
		{Point{20, 10}, 0, false}, // right edge is exclusive
		{Point{9, 10}, 0, false},
		{Point{9, 10}, 1, true}, // expanded by spacing
		{Point{0, 0}, 0, false},
		{Point{0, 0}, 15, true},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			if got := r.ContainsOffset(tt.p, tt.offset); got != tt.want {
				t.Errorf("ContainsOffset(%v, %d) = %v, want %v", tt.p, tt.offset, got, tt.want)
			}
		})
	}
}

func TestRectangleContains(t *testing.T) {
	r := Rectangle{X: 0, Y: 0, Width: 4, Height: 4}
	if !r.Contains(Point{0, 0}) {
		t.Error("expected origin corner to be contained")
	}
	if r.Contains(Point{4, 4}) {
		t.Error("bottom-right corner is exclusive and should not be contained")
	}
}
