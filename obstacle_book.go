package orthoroute

import (
	"github.com/google/uuid"

	"github.com/kungfusheep/orthoroute/core"
	"github.com/kungfusheep/orthoroute/geometry"
)

// ObstacleID opaquely identifies a registered obstacle. The router is the
// sole generator of ObstacleID values; callers never construct their own.
type ObstacleID uuid.UUID

// obstacleBook is the router's unified obstacle registry: a mutable,
// ID-keyed set of rectangles. The spacing offset is not stored here; the
// Router passes it to the search engine separately. Grounded on the teacher's
// unifiedObstacleManager, which combines physical and virtual obstacle
// sources behind one interface; here the only source is the caller-supplied
// rectangle set, but the "single place obstacle lookups go through" shape is
// kept.
type obstacleBook struct {
	rects map[ObstacleID]core.Rectangle
}

func newObstacleBook() *obstacleBook {
	return &obstacleBook{rects: make(map[ObstacleID]core.Rectangle)}
}

// add registers a new obstacle and returns its ID.
func (b *obstacleBook) add(r core.Rectangle) ObstacleID {
	id := ObstacleID(uuid.New())
	b.rects[id] = r
	return id
}

// remove deregisters an obstacle. Reports ErrUnknownObstacle if id is not
// registered.
func (b *obstacleBook) remove(id ObstacleID) error {
	if _, ok := b.rects[id]; !ok {
		return ErrUnknownObstacle
	}
	delete(b.rects, id)
	return nil
}

// update replaces the rectangle registered under id, returning the old
// rectangle so the caller can compute a dirty-marking band. Reports
// ErrUnknownObstacle if id is not registered.
func (b *obstacleBook) update(id ObstacleID, r core.Rectangle) (core.Rectangle, error) {
	old, ok := b.rects[id]
	if !ok {
		return core.Rectangle{}, ErrUnknownObstacle
	}
	b.rects[id] = r
	return old, nil
}

// all returns every registered obstacle's rectangle, in no particular order.
func (b *obstacleBook) all() []core.Rectangle {
	out := make([]core.Rectangle, 0, len(b.rects))
	for _, r := range b.rects {
		out = append(out, r)
	}
	return out
}

// dirtyBand returns the union of two rectangles' spacing-expanded bounding
// boxes, used to conservatively mark working paths dirty after an
// UpdateObstacle call: anything that touched either the old or new
// footprint (plus clearance) is suspect.
func dirtyBand(oldRect, newRect core.Rectangle, spacing int) core.Rectangle {
	left := geometry.Min(oldRect.Left()-spacing, newRect.Left()-spacing)
	top := geometry.Min(oldRect.Top()-spacing, newRect.Top()-spacing)
	right := geometry.Max(oldRect.Right()+spacing, newRect.Right()+spacing)
	bottom := geometry.Max(oldRect.Bottom()+spacing, newRect.Bottom()+spacing)
	return core.Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// overlaps reports whether a and b's extents intersect on both axes.
func overlaps(a, b core.Rectangle) bool {
	return a.Left() < b.Right() && b.Left() < a.Right() &&
		a.Top() < b.Bottom() && b.Top() < a.Bottom()
}

// boundingBox returns the smallest rectangle enclosing every point in pts.
// Returns false if pts is empty.
func boundingBox(pts []core.Point) (core.Rectangle, bool) {
	if len(pts) == 0 {
		return core.Rectangle{}, false
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = geometry.Min(minX, p.X)
		minY = geometry.Min(minY, p.Y)
		maxX = geometry.Max(maxX, p.X)
		maxY = geometry.Max(maxY, p.Y)
	}
	return core.Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
