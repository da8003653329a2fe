// Package orthoroute is an orthogonal connection router for a two-dimensional
// diagram editor: given rectangular obstacles and a set of polyline paths,
// it computes axis-aligned routes between each path's endpoints using an
// adaptation of the Mikami-Tabuchi line-search algorithm.
package orthoroute

import (
	"github.com/google/uuid"

	"github.com/kungfusheep/orthoroute/core"
	"github.com/kungfusheep/orthoroute/path"
	"github.com/kungfusheep/orthoroute/search"
)

// Default tunable values. Spacing is a per-Router setting (SetSpacing);
// StepSize and MaxLineCount are engine-wide compile-time knobs living in
// package search.
const defaultSpacing = 15

// ClientAreaNotifier is the router's one collaborator hook: notified when a
// path endpoint falls outside the current client area at solve time. Modeled
// as a narrow one-method interface, matching how the teacher always hides an
// external collaborator (obstacles.PortManager, core.PathFinder) behind an
// interface rather than a concrete type.
type ClientAreaNotifier interface {
	NotifyOutOfBounds(p *path.OrthogonalPath)
}

// Router owns every obstacle and path in a diagram and computes routes
// between path endpoints. Not safe for concurrent use: Solve is a blocking,
// synchronous call meant to run on the owning editor's single UI thread.
type Router struct {
	clientArea core.Rectangle
	hasArea    bool
	spacing    int
	notifier   ClientAreaNotifier

	obstacles *obstacleBook
	userPaths map[uuid.UUID]*path.OrthogonalPath

	// order preserves registration order so Solve's path-processing order
	// — and therefore which path wins contested pointSet geometry — is
	// reproducible run to run.
	order []uuid.UUID
}

// NewRouter creates an empty Router with the default spacing.
func NewRouter() *Router {
	return &Router{
		spacing:   defaultSpacing,
		obstacles: newObstacleBook(),
		userPaths: make(map[uuid.UUID]*path.OrthogonalPath),
	}
}

// SetClientArea replaces the rectangle within which trial lines may extend.
func (r *Router) SetClientArea(area core.Rectangle) {
	r.clientArea = area
	r.hasArea = true
}

// SetSpacing sets the mandatory obstacle clearance used by every solve.
func (r *Router) SetSpacing(spacing int) {
	r.spacing = spacing
}

// SetClientAreaNotifier installs the advisory out-of-bounds hook.
func (r *Router) SetClientAreaNotifier(n ClientAreaNotifier) {
	r.notifier = n
}

// AddObstacle registers a new obstacle and returns its ID.
func (r *Router) AddObstacle(rect core.Rectangle) ObstacleID {
	id := r.obstacles.add(rect)
	r.markDirtyNear(rect)
	return id
}

// RemoveObstacle deregisters an obstacle.
func (r *Router) RemoveObstacle(id ObstacleID) error {
	rect, ok := r.obstacles.rects[id]
	if !ok {
		return ErrUnknownObstacle
	}
	if err := r.obstacles.remove(id); err != nil {
		return err
	}
	r.markDirtyNear(rect)
	return nil
}

// UpdateObstacle replaces the rectangle registered under id. Every working
// path whose cached polyline intersected the old rectangle's spacing band or
// the new one's is marked dirty — a conservative invalidation, since
// tracking exactly which segment touched which obstacle would need a
// spatial index this router doesn't otherwise have.
func (r *Router) UpdateObstacle(id ObstacleID, newRect core.Rectangle) error {
	old, err := r.obstacles.update(id, newRect)
	if err != nil {
		return err
	}
	band := dirtyBand(old, newRect, r.spacing)
	r.markDirtyNear(band)
	return nil
}

// markDirtyNear marks every user path whose bounding box overlaps rect as
// dirty, conservatively re-solving anything that might be affected.
func (r *Router) markDirtyNear(rect core.Rectangle) {
	for _, id := range r.order {
		p := r.userPaths[id]
		box, ok := boundingBox(p.Points)
		if !ok || overlaps(box, rect) {
			p.Dirty = true
		}
	}
}

// AddPath registers a new user path and returns its ConnectionRef. Reports
// path.ErrInvalidBendpoints if start, end, and bendpoints don't decompose
// into a sequence of distinct waypoints.
func (r *Router) AddPath(start, end core.Point, bendpoints []core.Point) (uuid.UUID, error) {
	p, err := path.NewUserPath(start, end, bendpoints)
	if err != nil {
		return uuid.UUID{}, err
	}
	r.userPaths[p.Ref] = p
	r.order = append(r.order, p.Ref)
	return p.Ref, nil
}

// RemovePath deregisters a user path.
func (r *Router) RemovePath(ref uuid.UUID) error {
	if _, ok := r.userPaths[ref]; !ok {
		return ErrUnknownPath
	}
	delete(r.userPaths, ref)
	for i, id := range r.order {
		if id == ref {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Path returns the live user path registered under ref, or nil if unknown.
// Callers that need to mutate endpoints, bend points, or the dirty flag do
// so directly on the returned value; Solve picks up the change next call.
func (r *Router) Path(ref uuid.UUID) *path.OrthogonalPath {
	return r.userPaths[ref]
}

// Solve rebuilds every dirty user path's child decomposition, refreshes its
// children's forbidden directions, runs the line-search engine for every dirty
// working sub-path, stitches child polylines back into their owning user
// path, and returns an immutable deep-copied snapshot of every user path in
// registration order. Reports ErrNoClientArea if SetClientArea has never
// been called: every trial line needs a bounded client area to clamp its
// span to, so there is nothing safe to solve against.
func (r *Router) Solve() ([]*path.OrthogonalPath, error) {
	if !r.hasArea {
		return nil, ErrNoClientArea
	}

	pointSet := make(map[core.Point]bool)
	var routedPolylines [][]core.Point

	for _, id := range r.order {
		p := r.userPaths[id]
		if !p.Dirty {
			continue
		}

		p.Regenerate()
		p.RefreshEndpoints()

		working := workingSubPaths(p)
		for _, w := range working {
			res := r.solveOne(w, pointSet, routedPolylines)
			w.Points = res.Polyline
			w.Dirty = false
			if len(res.Polyline) > 0 {
				routedPolylines = append(routedPolylines, res.Polyline)
			}
		}

		p.Recombine()
		p.Dirty = false
	}

	snapshot := make([]*path.OrthogonalPath, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, r.userPaths[id].Clone())
	}
	return snapshot, nil
}

// workingSubPaths returns the sub-paths Solve should route for p: p itself
// if it has no children, or each of its children otherwise.
func workingSubPaths(p *path.OrthogonalPath) []*path.OrthogonalPath {
	if len(p.Children) == 0 {
		return []*path.OrthogonalPath{p}
	}
	return p.Children
}

// solveOne runs the line-search engine for a single working sub-path,
// issuing the client-area advisory notification first if either endpoint is
// out of bounds. Only called once Solve has confirmed a client area is set.
func (r *Router) solveOne(w *path.OrthogonalPath, pointSet map[core.Point]bool, routed [][]core.Point) search.Result {
	if r.notifier != nil {
		if !r.clientArea.Contains(w.Start) || !r.clientArea.Contains(w.End) {
			r.notifier.NotifyOutOfBounds(w)
		}
	}

	req := search.Request{
		Start:           w.Start,
		End:             w.End,
		IsChild:         w.IsChild,
		ForbiddenDir:    w.ForbiddenDirection,
		Obstacles:       r.obstacles.all(),
		Spacing:         r.spacing,
		ClientArea:      r.clientArea,
		PointSet:        pointSet,
		RoutedPolylines: routed,
	}
	return search.SolvePath(req)
}
