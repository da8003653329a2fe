// Package search implements the Mikami-Tabuchi line-search engine: the
// per-path layer map, spawn-children expansion, intersection processing, and
// traceback that turn a working sub-path's endpoints into a polyline.
package search

import (
	"github.com/kungfusheep/orthoroute/core"
	"github.com/kungfusheep/orthoroute/geometry"
	"github.com/kungfusheep/orthoroute/trial"
)

// Tunable engine parameters. Compile-time knobs, not per-call arguments.
const (
	// StepSize is the spawn stride along a trial line's axis.
	StepSize = 5

	// MaxLineCount bounds the total number of child trials attempted across
	// a single SolvePath call.
	MaxLineCount = 200000

	// collisionTolerance is the near-miss distance used to reject a child
	// trial whose origin falls close to an already-routed working path.
	collisionTolerance = 2
)

// bucket indices within a layer: polarity x orientation.
const (
	srcVert = iota
	srcHoriz
	tgtVert
	tgtHoriz
)

type layer [4][]int // indices into the arena, one list per bucket

// arena holds every trial.Line allocated during a single SolvePath call,
// addressed by integer index so parent back-links survive without pointers.
type arena struct {
	lines []*trial.Line
}

func (a *arena) add(l *trial.Line) int {
	a.lines = append(a.lines, l)
	return len(a.lines) - 1
}

func (a *arena) get(i int) *trial.Line {
	return a.lines[i]
}

// Request bundles the inputs SolvePath needs for one working sub-path.
type Request struct {
	Start, End      core.Point
	IsChild         bool
	ForbiddenDir    core.Direction
	Obstacles       []core.Rectangle
	Spacing         int
	ClientArea      core.Rectangle
	PointSet        map[core.Point]bool
	RoutedPolylines [][]core.Point
}

// Result is the outcome of a single SolvePath call.
type Result struct {
	Polyline      []core.Point
	LineCount     int
	BudgetReached bool
}

// pair is a candidate source/target intersection found during a layer sweep.
type pair struct {
	srcIdx, tgtIdx int
	intercept      core.Point
	length         int
}

// SolvePath runs the line-search engine for one working sub-path and returns
// its routed polyline.
func SolvePath(req Request) Result {
	if req.Start == req.End {
		return Result{Polyline: []core.Point{req.Start, req.End}}
	}

	a := &arena{}
	layers := []layer{}

	layers = append(layers, seedLayer(a, req))

	lineCount := 0
	var best *pair

	for iter := 0; ; iter++ {
		layers = append(layers, layer{})
		cur := layers[iter]
		nextIdx := iter + 1

		exhausted := false
		for b := 0; b < 4; b++ {
			for _, idx := range cur[b] {
				t := a.get(idx)
				spawnChildren(a, t, idx, &layers, nextIdx, req, &lineCount, &best)
				if lineCount >= MaxLineCount {
					exhausted = true
					break
				}
			}
			if exhausted {
				break
			}
		}

		if best != nil {
			poly := traceback(a, best, req.PointSet)
			return Result{Polyline: poly, LineCount: lineCount}
		}
		if exhausted {
			return Result{
				Polyline:      []core.Point{req.Start, req.End},
				LineCount:     lineCount,
				BudgetReached: true,
			}
		}
		if layerEmpty(&layers[nextIdx]) {
			return Result{LineCount: lineCount}
		}
	}
}

func layerEmpty(l *layer) bool {
	for _, b := range l {
		if len(b) > 0 {
			return false
		}
	}
	return true
}

// seedLayer builds iteration 0: a horizontal seed at each endpoint, plus
// vertical seeds at both endpoints when the sub-path is a child (not
// anchored to a figure side).
func seedLayer(a *arena, req Request) layer {
	var l layer

	srcH := trial.NewSeed(req.Start, false, true, req.ForbiddenDir, req.Obstacles, req.Spacing, req.ClientArea)
	tgtH := trial.NewSeed(req.End, false, false, req.ForbiddenDir, req.Obstacles, req.Spacing, req.ClientArea)
	idx := a.add(srcH)
	l[srcHoriz] = append(l[srcHoriz], idx)
	idx = a.add(tgtH)
	l[tgtHoriz] = append(l[tgtHoriz], idx)

	if req.IsChild {
		srcV := trial.NewSeed(req.Start, true, true, req.ForbiddenDir, req.Obstacles, req.Spacing, req.ClientArea)
		tgtV := trial.NewSeed(req.End, true, false, req.ForbiddenDir, req.Obstacles, req.Spacing, req.ClientArea)
		idx = a.add(srcV)
		l[srcVert] = append(l[srcVert], idx)
		idx = a.add(tgtV)
		l[tgtVert] = append(l[tgtVert], idx)
	}

	return l
}

// bucketFor returns the layer bucket a trial belongs in given its polarity
// and orientation.
func bucketFor(l *trial.Line) int {
	switch {
	case l.FromSource && l.Vertical:
		return srcVert
	case l.FromSource && !l.Vertical:
		return srcHoriz
	case !l.FromSource && l.Vertical:
		return tgtVert
	default:
		return tgtHoriz
	}
}

// opposingBucketFor returns the bucket a line must search for an
// intersecting partner in: opposite polarity, same orientation as the new
// child's perpendicular partner would need — i.e. perpendicular to l and
// opposing polarity.
func opposingBucketFor(l *trial.Line) int {
	switch {
	case l.FromSource && !l.Vertical:
		return tgtVert
	case l.FromSource && l.Vertical:
		return tgtHoriz
	case !l.FromSource && !l.Vertical:
		return srcVert
	default:
		return srcHoriz
	}
}

// spawnChildren walks T's axis away from T.from in both directions in
// StepSize strides, attempting a child trial at every position. Returns
// true if a candidate pair was found; best is replaced only when that
// candidate is shorter than the current one.
func spawnChildren(a *arena, t *trial.Line, tIdx int, layers *[]layer, nextIdx int, req Request, lineCount *int, best **pair) bool {
	axis := t.AxisCoord()
	found := false

	descStart := axis
	if t.HasForbiddenStart() {
		descStart = t.ForbiddenStart - 1
	}
	for i := descStart; i >= t.Start; i -= StepSize {
		if trySpawn(a, t, tIdx, i, layers, nextIdx, req, lineCount, best) {
			found = true
			break
		}
		if *lineCount >= MaxLineCount {
			return found
		}
	}

	ascStart := axis
	if t.HasForbiddenFinish() {
		ascStart = t.ForbiddenFinish + 1
	}
	for i := ascStart; i < t.Finish; i += StepSize {
		if trySpawn(a, t, tIdx, i, layers, nextIdx, req, lineCount, best) {
			found = true
			break
		}
		if *lineCount >= MaxLineCount {
			return found
		}
	}

	return found
}

// trySpawn attempts one child trial at axis position i, files it, and checks
// for an intersection. Returns true if a candidate pair was accepted and the
// caller's scan branch should stop.
func trySpawn(a *arena, t *trial.Line, tIdx int, i int, layers *[]layer, nextIdx int, req Request, lineCount *int, best **pair) bool {
	*lineCount++
	if *lineCount > MaxLineCount {
		return false
	}

	origin := geometry.ChildFrom(t.From, t.Vertical, i)
	if rejected(origin, req) {
		return false
	}

	child := trial.NewChild(t, tIdx, i, req.Obstacles, req.Spacing)
	if child == nil {
		return false
	}

	childIdx := a.add(child)
	b := bucketFor(child)
	(*layers)[nextIdx][b] = append((*layers)[nextIdx][b], childIdx)

	opp := opposingBucketFor(child)
	xIdx, ok := findIntersection(a, *layers, opp, child)
	if !ok {
		return false
	}

	x := a.get(xIdx)
	var intercept core.Point
	if child.Vertical {
		intercept = core.Point{X: child.From.X, Y: x.From.Y}
	} else {
		intercept = core.Point{X: x.From.X, Y: child.From.Y}
	}
	if req.PointSet[intercept] {
		return false
	}

	var srcIdx, tgtIdx int
	if child.FromSource {
		srcIdx, tgtIdx = childIdx, xIdx
	} else {
		srcIdx, tgtIdx = xIdx, childIdx
	}

	candidate := &pair{
		srcIdx:    srcIdx,
		tgtIdx:    tgtIdx,
		intercept: intercept,
		length:    tracebackLength(a, srcIdx, tgtIdx),
	}

	if *best == nil || candidate.length < (*best).length {
		*best = candidate
	}
	return true
}

// findIntersection scans every existing layer's opposing-polarity
// perpendicular bucket, most recent iteration first, returning the first
// trial that intersects child.
func findIntersection(a *arena, layers []layer, opp int, child *trial.Line) (int, bool) {
	for li := len(layers) - 1; li >= 0; li-- {
		bucket := layers[li][opp]
		for i := len(bucket) - 1; i >= 0; i-- {
			idx := bucket[i]
			m := a.get(idx)
			if child.Intersects(m) {
				return idx, true
			}
		}
	}
	return 0, false
}

// rejected implements the child-trial creation suppression rule: a candidate
// origin is rejected if it's already in the point set or lies within
// tolerance 2 of a previously routed working path's polyline.
func rejected(p core.Point, req Request) bool {
	if req.PointSet[p] {
		return true
	}
	for _, poly := range req.RoutedPolylines {
		for _, q := range poly {
			if geometry.WithinTolerance(p, q, collisionTolerance) {
				return true
			}
		}
	}
	return false
}

// tracebackLength counts the from-points on both parent chains of a
// candidate pair (the intercept point is not counted), used to compare
// candidate pairs found within the same layer sweep.
func tracebackLength(a *arena, srcIdx, tgtIdx int) int {
	return len(walkChain(a, srcIdx)) + len(walkChain(a, tgtIdx))
}

// walkChain returns the from-points of idx's parent chain, from idx back to
// its seed, skipping consecutive duplicates.
func walkChain(a *arena, idx int) []core.Point {
	var pts []core.Point
	for idx != -1 {
		l := a.get(idx)
		if len(pts) == 0 || pts[len(pts)-1] != l.From {
			pts = append(pts, l.From)
		}
		idx = l.Parent
	}
	return pts
}

// reverse reverses a point slice in place.
func reverse(pts []core.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// traceback recovers the winning pair's polyline: A's chain reversed (seed
// outward), the intercept point, then B's chain (intercept outward to its
// seed). A collinear straight shot can leave the intercept coincident with
// the adjacent chain's own endpoint (e.g. a no-obstacle straight line, where
// the first child spawned already lands on the target seed); appendDedup
// collapses that across the whole assembled polyline so a clean shot still
// comes out as exactly two points. Every emitted point is added to pointSet.
func traceback(a *arena, p *pair, pointSet map[core.Point]bool) []core.Point {
	srcChain := walkChain(a, p.srcIdx)
	reverse(srcChain)

	tgtChain := walkChain(a, p.tgtIdx)

	poly := make([]core.Point, 0, len(srcChain)+1+len(tgtChain))
	poly = appendDedup(poly, srcChain...)
	poly = appendDedup(poly, p.intercept)
	poly = appendDedup(poly, tgtChain...)

	for _, pt := range poly {
		pointSet[pt] = true
	}
	return poly
}

// appendDedup appends pts to poly, skipping any point equal to the point
// currently at the end of poly.
func appendDedup(poly []core.Point, pts ...core.Point) []core.Point {
	for _, pt := range pts {
		if len(poly) > 0 && poly[len(poly)-1] == pt {
			continue
		}
		poly = append(poly, pt)
	}
	return poly
}
