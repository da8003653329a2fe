// Package geometry provides small integer-axis helpers shared by the trial
// line and search packages. Kept as ungrouped free functions, matching the
// rest of the routing stack's scalar-math package.
package geometry

import "github.com/kungfusheep/orthoroute/core"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(a, b core.Point) int {
	return Abs(b.X-a.X) + Abs(b.Y-a.Y)
}

// AxisCoord returns p's coordinate along a line's own axis: Y for a vertical
// line, X for a horizontal one.
func AxisCoord(p core.Point, vertical bool) int {
	if vertical {
		return p.Y
	}
	return p.X
}

// TransverseCoord returns p's coordinate along the axis perpendicular to a
// line's own axis — the line's fixed coordinate.
func TransverseCoord(p core.Point, vertical bool) int {
	if vertical {
		return p.X
	}
	return p.Y
}

// AxisExtent returns an obstacle's [lo, hi) extent along a line's own axis.
func AxisExtent(r core.Rectangle, vertical bool) (lo, hi int) {
	if vertical {
		return r.Top(), r.Bottom()
	}
	return r.Left(), r.Right()
}

// TransverseExtent returns an obstacle's [lo, hi) extent along the axis
// perpendicular to a line's own axis.
func TransverseExtent(r core.Rectangle, vertical bool) (lo, hi int) {
	if vertical {
		return r.Left(), r.Right()
	}
	return r.Top(), r.Bottom()
}

// ChildFrom builds the origin of a child trial spawned from a parent whose
// origin is parentFrom and whose orientation is vertical=parentVertical, at
// axis position i along the parent's own axis.
func ChildFrom(parentFrom core.Point, parentVertical bool, i int) core.Point {
	if parentVertical {
		return core.Point{X: parentFrom.X, Y: i}
	}
	return core.Point{X: i, Y: parentFrom.Y}
}

// WithinTolerance reports whether a and b are within tol units on both axes
// — used for the near-miss collision test against already-routed polylines.
func WithinTolerance(a, b core.Point, tol int) bool {
	return Abs(a.X-b.X) <= tol && Abs(a.Y-b.Y) <= tol
}
