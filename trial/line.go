// Package trial implements TrialLine, the axis-aligned probe the Mikami-Tabuchi
// search expands away from a path's endpoints: origin, orientation, the valid
// span surviving obstacle cuts, the no-spawn sub-range around its own origin,
// and the back-link used to trace a winning pair home.
package trial

import (
	"math"

	"github.com/kungfusheep/orthoroute/core"
	"github.com/kungfusheep/orthoroute/geometry"
)

// undefined marks a Start/Finish bound that has not yet been tightened by an
// obstacle cut or the client-area default span.
const (
	undefinedStart  = math.MinInt
	undefinedFinish = math.MaxInt
)

// Line is one trial probe. Immutable after construction except for the
// search-bookkeeping Parent back-link, which is fixed at construction time
// too — nothing mutates a Line once spawn-children has filed it in a layer.
type Line struct {
	From       core.Point
	Vertical   bool
	FromSource bool

	Start  int // inclusive
	Finish int // exclusive

	ForbiddenStart  int // inclusive; undefinedStart if absent
	ForbiddenFinish int // exclusive; undefinedFinish if absent

	// Parent is the arena index of the trial that spawned this one, or -1
	// for a seed. The arena itself lives in package search.
	Parent int
}

// HasForbiddenStart reports whether the line carries a no-spawn sub-range.
func (l *Line) HasForbiddenStart() bool {
	return l.ForbiddenStart != undefinedStart
}

// HasForbiddenFinish reports whether the line carries a no-spawn sub-range.
func (l *Line) HasForbiddenFinish() bool {
	return l.ForbiddenFinish != undefinedFinish
}

// AxisCoord returns From's coordinate along the line's own axis.
func (l *Line) AxisCoord() int {
	return geometry.AxisCoord(l.From, l.Vertical)
}

// TransverseCoord returns From's coordinate along the perpendicular axis.
func (l *Line) TransverseCoord() int {
	return geometry.TransverseCoord(l.From, l.Vertical)
}

// NewSeed builds a seed trial line rooted at a path endpoint. fromSource is
// true for the start endpoint, false for the end endpoint; forbiddenDir is
// the owning sub-path's forbidden direction (core.None if none).
func NewSeed(p core.Point, vertical, fromSource bool, forbiddenDir core.Direction, obstacles []core.Rectangle, spacing int, area core.Rectangle) *Line {
	l := &Line{
		From:            p,
		Vertical:        vertical,
		FromSource:      fromSource,
		Start:           undefinedStart,
		Finish:          undefinedFinish,
		ForbiddenStart:  undefinedStart,
		ForbiddenFinish: undefinedFinish,
		Parent:          -1,
	}

	for _, ob := range obstacles {
		cutStartingLine(l, ob, spacing)
	}

	clampToClientArea(l, area)

	for _, ob := range obstacles {
		applyOriginForbiddenRange(l, ob, spacing)
	}
	applyDirectionForbiddenRange(l, forbiddenDir)

	return l
}

// NewChild builds a child trial spawned from parent at axis position i. The
// child's orientation is the parent's negated and it inherits fromSource.
// Returns nil if an obstacle containing the child's origin cuts the line to
// an empty or inverted span.
func NewChild(parent *Line, parentIdx, i int, obstacles []core.Rectangle, spacing int) *Line {
	var from core.Point
	if !parent.Vertical {
		// Parent is horizontal; child is vertical, fixed at x=i.
		from = core.Point{X: i, Y: parent.From.Y}
	} else {
		from = core.Point{X: parent.From.X, Y: i}
	}

	l := &Line{
		From:            from,
		Vertical:        !parent.Vertical,
		FromSource:      parent.FromSource,
		Start:           undefinedStart,
		Finish:          undefinedFinish,
		ForbiddenStart:  undefinedStart,
		ForbiddenFinish: undefinedFinish,
		Parent:          parentIdx,
	}

	for _, ob := range obstacles {
		cutChildLine(l, ob, spacing)
	}

	if l.Start != undefinedStart && l.Finish != undefinedFinish && l.Start >= l.Finish {
		return nil
	}
	return l
}

// cutStartingLine applies the seed obstacle-cut rule: obstacles containing
// the origin are ignored (the origin is expected to lie inside its own
// figure); all others tighten Start/Finish per the shared cut rule.
func cutStartingLine(l *Line, ob core.Rectangle, spacing int) {
	if ob.ContainsOffset(l.From, 0) {
		return
	}
	cut(l, ob, spacing)
}

// cutChildLine applies the child obstacle-cut rule: obstacles containing the
// origin cut the line rather than being ignored.
func cutChildLine(l *Line, ob core.Rectangle, spacing int) {
	cut(l, ob, spacing)
}

// cut implements the shared obstacle-cut rule described by the transverse
// band test: if ob lies on l's axis within spacing, tighten Start or Finish
// depending on which side of the origin ob falls on.
func cut(l *Line, ob core.Rectangle, spacing int) {
	t0, t1 := geometry.TransverseExtent(ob, l.Vertical)
	transverse := l.TransverseCoord()
	if transverse < t0-spacing || transverse >= t1+spacing {
		return
	}

	o0, o1 := geometry.AxisExtent(ob, l.Vertical)
	a := l.AxisCoord()

	if a > o1 {
		bound := o1 + spacing
		if l.Start == undefinedStart || bound > l.Start {
			l.Start = bound
		}
	} else if a <= o0 {
		bound := o0 - spacing
		if l.Finish == undefinedFinish || bound < l.Finish {
			l.Finish = bound
		}
	}
}

// clampToClientArea fills in any Start/Finish left undefined by obstacle
// cutting with the client area's edges along the line's axis.
func clampToClientArea(l *Line, area core.Rectangle) {
	lo, hi := geometry.AxisExtent(area, l.Vertical)
	if l.Start == undefinedStart {
		l.Start = lo
	}
	if l.Finish == undefinedFinish {
		l.Finish = hi
	}
}

// applyOriginForbiddenRange widens the no-spawn sub-range to cover an
// obstacle that contains the seed's origin, expanded by spacing on the
// line's own axis.
func applyOriginForbiddenRange(l *Line, ob core.Rectangle, spacing int) {
	if !ob.ContainsOffset(l.From, 0) {
		return
	}
	o0, o1 := geometry.AxisExtent(ob, l.Vertical)
	lo, hi := o0-spacing, o1+spacing
	if l.ForbiddenStart == undefinedStart || lo < l.ForbiddenStart {
		l.ForbiddenStart = lo
	}
	if l.ForbiddenFinish == undefinedFinish || hi > l.ForbiddenFinish {
		l.ForbiddenFinish = hi
	}
}

// applyDirectionForbiddenRange suppresses an entire scan branch when it
// points in the seed's forbidden direction. Directions that don't match the
// seed's orientation are ignored. The descending branch walks the axis
// toward smaller coordinates (up on a vertical line, left on a horizontal
// one) and is bounded by ForbiddenStart; the ascending branch walks toward
// larger coordinates (down, right) and is bounded by ForbiddenFinish.
// spawnChildren resumes a bounded branch at ForbiddenStart-1 (descending) or
// ForbiddenFinish+1 (ascending), so clamping the bound to the branch's own
// Start/Finish edge leaves it no room to take a single step. The branch
// never runs at all, rather than merely starting a couple of units in.
func applyDirectionForbiddenRange(l *Line, dir core.Direction) {
	switch {
	case l.Vertical && dir == core.Down:
		if l.ForbiddenFinish == undefinedFinish || l.Finish > l.ForbiddenFinish {
			l.ForbiddenFinish = l.Finish
		}
	case l.Vertical && dir == core.Up:
		if l.ForbiddenStart == undefinedStart || l.Start < l.ForbiddenStart {
			l.ForbiddenStart = l.Start
		}
	case !l.Vertical && dir == core.Left:
		if l.ForbiddenStart == undefinedStart || l.Start < l.ForbiddenStart {
			l.ForbiddenStart = l.Start
		}
	case !l.Vertical && dir == core.Right:
		if l.ForbiddenFinish == undefinedFinish || l.Finish > l.ForbiddenFinish {
			l.ForbiddenFinish = l.Finish
		}
	}
}

// Intersects reports whether l and m form a valid Mikami-Tabuchi
// intersection: perpendicular orientation, opposing source/target polarity,
// l's fixed (transverse) coordinate falling within m's own-axis span, and
// m's fixed coordinate falling within l's own-axis span.
func (l *Line) Intersects(m *Line) bool {
	if l.Vertical == m.Vertical {
		return false
	}
	if l.FromSource == m.FromSource {
		return false
	}
	lTransverse := l.TransverseCoord()
	mTransverse := m.TransverseCoord()
	if lTransverse < m.Start || lTransverse >= m.Finish {
		return false
	}
	if mTransverse < l.Start || mTransverse >= l.Finish {
		return false
	}
	return true
}

// InterceptPoint returns the grid point where l and m cross, given l.vertical
// != m.vertical.
func (l *Line) InterceptPoint(m *Line) core.Point {
	if l.Vertical {
		return core.Point{X: l.From.X, Y: m.From.Y}
	}
	return core.Point{X: m.From.X, Y: l.From.Y}
}
