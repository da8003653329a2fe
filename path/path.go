// Package path implements OrthogonalPath and the child sub-path
// decomposition that lets a single user path with bend points be routed as a
// chain of two-endpoint sub-paths.
package path

import (
	"errors"

	"github.com/google/uuid"

	"github.com/kungfusheep/orthoroute/core"
)

// ErrInvalidBendpoints is returned when a bend point list would decompose
// into a degenerate child sub-path: two consecutive waypoints (including
// the path's own Start/End) landing on the same point leave that child with
// no direction to route in, and RefreshEndpoints nothing to propagate.
var ErrInvalidBendpoints = errors.New("path: invalid bendpoint list")

// OrthogonalPath is either a user path (possibly owning child sub-paths via
// bend points) or a child sub-path (IsChild=true, no bend points of its own).
type OrthogonalPath struct {
	Ref   uuid.UUID
	Start core.Point
	End   core.Point

	// Bendpoints is only set on a user path; nil on a child.
	Bendpoints []core.Point

	ForbiddenDirection core.Direction
	Points             []core.Point
	Dirty              bool
	IsChild            bool

	// Children holds the current decomposition of a user path, empty on a
	// path with no bend points and nil on a child itself.
	Children []*OrthogonalPath
}

// NewUserPath builds a dirty user path ready for its first Regenerate call.
// Returns ErrInvalidBendpoints if any two consecutive waypoints coincide.
func NewUserPath(start, end core.Point, bendpoints []core.Point) (*OrthogonalPath, error) {
	p := &OrthogonalPath{
		Ref:        uuid.New(),
		Start:      start,
		End:        end,
		Bendpoints: bendpoints,
		Dirty:      true,
	}
	if hasCoincidentWaypoints(p.Waypoints()) {
		return nil, ErrInvalidBendpoints
	}
	return p, nil
}

// hasCoincidentWaypoints reports whether any two consecutive points in pts
// are equal.
func hasCoincidentWaypoints(pts []core.Point) bool {
	for i := 1; i < len(pts); i++ {
		if pts[i-1] == pts[i] {
			return true
		}
	}
	return false
}

// Waypoints returns the path's endpoints with its bend points interleaved:
// (start, bp0, bp1, ..., end).
func (p *OrthogonalPath) Waypoints() []core.Point {
	pts := make([]core.Point, 0, len(p.Bendpoints)+2)
	pts = append(pts, p.Start)
	pts = append(pts, p.Bendpoints...)
	pts = append(pts, p.End)
	return pts
}

// Regenerate rebuilds p's child decomposition to match its current bend
// point count. A path with b bend points owns exactly b+1 children. Existing
// children are reused where possible (carrying over their Ref) so a solved
// child's downstream identity is stable across unrelated edits; extras are
// discarded and new ones appended.
func (p *OrthogonalPath) Regenerate() {
	waypoints := p.Waypoints()
	wantChildren := len(waypoints) - 1

	if wantChildren == 1 {
		p.Children = nil
		return
	}

	if len(p.Children) > wantChildren {
		p.Children = p.Children[:wantChildren]
	}
	for len(p.Children) < wantChildren {
		p.Children = append(p.Children, &OrthogonalPath{
			Ref:     uuid.New(),
			IsChild: true,
			Dirty:   true,
		})
	}

	for i, child := range p.Children {
		newStart, newEnd := waypoints[i], waypoints[i+1]
		if child.Start != newStart || child.End != newEnd {
			child.Dirty = true
		}
		child.Start = newStart
		child.End = newEnd
	}
}

// RefreshEndpoints assigns every child after the first a forbidden direction
// so it does not immediately double back into its predecessor. The direction
// is the compass heading from the shared joint back toward the predecessor's
// own start — the one direction that child must not step in. The first
// child's forbidden direction is left unchanged.
func (p *OrthogonalPath) RefreshEndpoints() {
	for i := 1; i < len(p.Children); i++ {
		prev := p.Children[i-1]
		p.Children[i].ForbiddenDirection = compassDirection(prev.End, prev.Start)
	}
}

// compassDirection returns the dominant axis-aligned compass direction
// pointing from origin toward target.
func compassDirection(origin, target core.Point) core.Direction {
	dx := target.X - origin.X
	dy := target.Y - origin.Y

	if abs(dx) >= abs(dy) {
		if dx < 0 {
			return core.Left
		}
		if dx > 0 {
			return core.Right
		}
	} else {
		if dy < 0 {
			return core.Up
		}
		return core.Down
	}
	return core.None
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Recombine concatenates the children's solved polylines into p.Points,
// dropping the last point of each intermediate child (which duplicates the
// next child's first point) and appending the final child's last point.
func (p *OrthogonalPath) Recombine() {
	if len(p.Children) == 0 {
		return
	}

	var pts []core.Point
	for i, child := range p.Children {
		if len(child.Points) == 0 {
			continue
		}
		if i < len(p.Children)-1 {
			pts = append(pts, child.Points[:len(child.Points)-1]...)
		} else {
			pts = append(pts, child.Points...)
		}
	}
	p.Points = pts
}

// Clone returns a deep copy of p, including its children, suitable for an
// immutable snapshot returned to a caller.
func (p *OrthogonalPath) Clone() *OrthogonalPath {
	c := *p
	c.Bendpoints = append([]core.Point(nil), p.Bendpoints...)
	c.Points = append([]core.Point(nil), p.Points...)
	if p.Children != nil {
		c.Children = make([]*OrthogonalPath, len(p.Children))
		for i, child := range p.Children {
			c.Children[i] = child.Clone()
		}
	}
	return &c
}
