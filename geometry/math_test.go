package geometry

import (
	"testing"

	"github.com/kungfusheep/orthoroute/core"
)

func TestAbsMinMax(t *testing.T) {
	if got := Abs(-5); got != 5 {
		t.Errorf("Abs(-5) = %d, want 5", got)
	}
	if got := Min(3, 7); got != 3 {
		t.Errorf("Min(3,7) = %d, want 3", got)
	}
	if got := Max(3, 7); got != 7 {
		t.Errorf("Max(3,7) = %d, want 7", got)
	}
}

func TestManhattanDistance(t *testing.T) {
	a := core.Point{X: 1, Y: 1}
	b := core.Point{X: 4, Y: 5}
	if got := ManhattanDistance(a, b); got != 7 {
		t.Errorf("ManhattanDistance = %d, want 7", got)
	}
}

func TestAxisCoord(t *testing.T) {
	p := core.Point{X: 3, Y: 9}
	if got := AxisCoord(p, true); got != 9 {
		t.Errorf("AxisCoord(vertical) = %d, want 9", got)
	}
	if got := AxisCoord(p, false); got != 3 {
		t.Errorf("AxisCoord(horizontal) = %d, want 3", got)
	}
	if got := TransverseCoord(p, true); got != 3 {
		t.Errorf("TransverseCoord(vertical) = %d, want 3", got)
	}
	if got := TransverseCoord(p, false); got != 9 {
		t.Errorf("TransverseCoord(horizontal) = %d, want 9", got)
	}
}

func TestAxisExtent(t *testing.T) {
	r := core.Rectangle{X: 10, Y: 20, Width: 5, Height: 8}

	lo, hi := AxisExtent(r, true) // vertical -> Y extent
	if lo != 20 || hi != 28 {
		t.Errorf("AxisExtent(vertical) = (%d,%d), want (20,28)", lo, hi)
	}

	lo, hi = AxisExtent(r, false) // horizontal -> X extent
	if lo != 10 || hi != 15 {
		t.Errorf("AxisExtent(horizontal) = (%d,%d), want (10,15)", lo, hi)
	}

	lo, hi = TransverseExtent(r, true)
	if lo != 10 || hi != 15 {
		t.Errorf("TransverseExtent(vertical) = (%d,%d), want (10,15)", lo, hi)
	}
}

func TestChildFrom(t *testing.T) {
	parent := core.Point{X: 100, Y: 200}

	// Parent horizontal (vertical=false) -> child is vertical at x=i.
	got := ChildFrom(parent, false, 50)
	want := core.Point{X: 50, Y: 200}
	if got != want {
		t.Errorf("ChildFrom(horizontal parent) = %v, want %v", got, want)
	}

	// Parent vertical -> child is horizontal at y=i.
	got = ChildFrom(parent, true, 75)
	want = core.Point{X: 100, Y: 75}
	if got != want {
		t.Errorf("ChildFrom(vertical parent) = %v, want %v", got, want)
	}
}

func TestWithinTolerance(t *testing.T) {
	a := core.Point{X: 10, Y: 10}
	if !WithinTolerance(a, core.Point{X: 11, Y: 12}, 2) {
		t.Error("expected points within tolerance 2 to match")
	}
	if WithinTolerance(a, core.Point{X: 13, Y: 10}, 2) {
		t.Error("expected points outside tolerance 2 to not match")
	}
}
