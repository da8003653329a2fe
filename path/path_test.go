package path

import (
	"testing"

	"github.com/kungfusheep/orthoroute/core"
)

func mustNewUserPath(t *testing.T, start, end core.Point, bendpoints []core.Point) *OrthogonalPath {
	t.Helper()
	p, err := NewUserPath(start, end, bendpoints)
	if err != nil {
		t.Fatalf("mustNewUserPath(t, %v, %v, %v) failed: %v", start, end, bendpoints, err)
	}
	return p
}

func TestNewUserPathRejectsCoincidentWaypoints(t *testing.T) {
	if _, err := NewUserPath(core.Point{X: 0, Y: 0}, core.Point{X: 0, Y: 0}, nil); err != ErrInvalidBendpoints {
		t.Errorf("NewUserPath with Start==End = %v, want ErrInvalidBendpoints", err)
	}
	if _, err := NewUserPath(core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 0}, []core.Point{{X: 0, Y: 0}}); err != ErrInvalidBendpoints {
		t.Errorf("NewUserPath with a bendpoint coincident with Start = %v, want ErrInvalidBendpoints", err)
	}
}

func TestRegenerateNoBendpoints(t *testing.T) {
	p := mustNewUserPath(t, core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 0}, nil)
	p.Regenerate()
	if p.Children != nil {
		t.Errorf("expected no children for a bare start/end path, got %d", len(p.Children))
	}
}

func TestRegenerateWithBendpoints(t *testing.T) {
	bps := []core.Point{{X: 50, Y: 0}, {X: 50, Y: 50}}
	p := mustNewUserPath(t, core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 50}, bps)
	p.Regenerate()

	if len(p.Children) != 3 {
		t.Fatalf("expected 3 children for 2 bendpoints, got %d", len(p.Children))
	}

	want := [][2]core.Point{
		{{X: 0, Y: 0}, {X: 50, Y: 0}},
		{{X: 50, Y: 0}, {X: 50, Y: 50}},
		{{X: 50, Y: 50}, {X: 100, Y: 50}},
	}
	for i, child := range p.Children {
		if child.Start != want[i][0] || child.End != want[i][1] {
			t.Errorf("child %d = (%v,%v), want (%v,%v)", i, child.Start, child.End, want[i][0], want[i][1])
		}
		if !child.IsChild {
			t.Errorf("child %d should have IsChild=true", i)
		}
	}
}

func TestRegenerateShrinkGrow(t *testing.T) {
	p := mustNewUserPath(t, core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 0}, []core.Point{{X: 50, Y: 0}})
	p.Regenerate()
	if len(p.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(p.Children))
	}
	firstRef := p.Children[0].Ref

	// Grow to 3 bendpoints.
	p.Bendpoints = []core.Point{{X: 25, Y: 0}, {X: 50, Y: 0}, {X: 75, Y: 0}}
	p.Regenerate()
	if len(p.Children) != 4 {
		t.Fatalf("expected 4 children after growing, got %d", len(p.Children))
	}
	if p.Children[0].Ref != firstRef {
		t.Error("expected the first child's identity to survive a grow")
	}

	// Shrink back to none.
	p.Bendpoints = nil
	p.Regenerate()
	if p.Children != nil {
		t.Errorf("expected children to disappear with no bendpoints, got %d", len(p.Children))
	}
}

func TestRefreshEndpointsForbidsDoubleBack(t *testing.T) {
	p := mustNewUserPath(t, core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 100}, []core.Point{{X: 50, Y: 0}})
	p.Regenerate()
	p.RefreshEndpoints()

	// First child has no predecessor.
	if p.Children[0].ForbiddenDirection != core.None {
		t.Errorf("first child should have no forbidden direction, got %v", p.Children[0].ForbiddenDirection)
	}
	// Second child's predecessor ran (0,0)->(50,0), heading Right; it must
	// not immediately head back Left into its predecessor.
	if p.Children[1].ForbiddenDirection != core.Left {
		t.Errorf("second child forbidden direction = %v, want Left", p.Children[1].ForbiddenDirection)
	}
}

func TestRecombine(t *testing.T) {
	p := mustNewUserPath(t, core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 100}, []core.Point{{X: 50, Y: 0}})
	p.Regenerate()
	p.Children[0].Points = []core.Point{{X: 0, Y: 0}, {X: 50, Y: 0}}
	p.Children[1].Points = []core.Point{{X: 50, Y: 0}, {X: 50, Y: 100}, {X: 100, Y: 100}}

	p.Recombine()

	want := []core.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 100}, {X: 100, Y: 100}}
	if len(p.Points) != len(want) {
		t.Fatalf("Points = %v, want %v", p.Points, want)
	}
	for i := range want {
		if p.Points[i] != want[i] {
			t.Errorf("Points[%d] = %v, want %v", i, p.Points[i], want[i])
		}
	}
}

func TestClone(t *testing.T) {
	p := mustNewUserPath(t, core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 0}, []core.Point{{X: 50, Y: 0}})
	p.Regenerate()
	p.Points = []core.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}

	clone := p.Clone()
	clone.Points[0] = core.Point{X: -1, Y: -1}
	clone.Children[0].Start = core.Point{X: -1, Y: -1}

	if p.Points[0] == clone.Points[0] {
		t.Error("mutating the clone's Points must not affect the original")
	}
	if p.Children[0].Start == clone.Children[0].Start {
		t.Error("mutating the clone's children must not affect the original")
	}
}
