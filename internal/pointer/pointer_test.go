package pointer

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-fireworks/internal/core"
	"github.com/vovakirdan/tui-fireworks/internal/registry"
)

var viewport = core.NewBox(core.Zero, core.NewVector(640, 384))

func TestSourcesRegistered(t *testing.T) {
	for _, id := range []string{"mouse", "glide", "wander", "orbit"} {
		src, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if src.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, src.ID())
		}
	}
}

func TestSourcesStayInsideBounds(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			src, _ := registry.Create(info.ID)
			src.Reset(viewport, 42)
			src.MoveTo(core.NewVector(100, 100))

			for i := 0; i < 600; i++ {
				src.Step(1000.0/60, viewport)
				if !viewport.Contains(src.Position()) {
					t.Fatalf("step %d: position %s left the viewport", i, src.Position())
				}
			}
		})
	}
}

func TestMouseFollowsExactly(t *testing.T) {
	m := NewMouse()
	m.Reset(viewport, 1)
	if !m.Position().Equals(viewport.Center()) {
		t.Errorf("Reset position = %s, expected the center", m.Position())
	}

	m.MoveTo(core.NewVector(12, 34))
	if !m.Position().Equals(core.NewVector(12, 34)) {
		t.Errorf("Position() = %s, expected (12, 34)", m.Position())
	}
}

func TestGlideSettlesOnTarget(t *testing.T) {
	g := NewGlide()
	g.Reset(viewport, 1)
	target := core.NewVector(50, 300)
	g.MoveTo(target)

	g.Step(1000.0/60, viewport)
	if g.Position().Equals(target) {
		t.Error("glide should not jump to the target in one step")
	}
	for i := 0; i < 600; i++ {
		g.Step(1000.0/60, viewport)
	}
	if g.Position().Distance(target) > 0.5 {
		t.Errorf("after 10s glide is at %s, expected near %s", g.Position(), target)
	}

	before := g.Position()
	g.Step(0, viewport)
	if !g.Position().Equals(before) {
		t.Error("a zero step should not move the anchor")
	}
}

func TestWanderDeterministicAndMoving(t *testing.T) {
	a, b := NewWander(), NewWander()
	a.Reset(viewport, 7)
	b.Reset(viewport, 7)

	start := a.Position()
	for i := 0; i < 120; i++ {
		a.Step(1000.0/60, viewport)
		b.Step(1000.0/60, viewport)
		if !a.Position().Equals(b.Position()) {
			t.Fatalf("same seed diverged at step %d: %s vs %s", i, a.Position(), b.Position())
		}
	}
	if a.Position().Equals(start) {
		t.Error("wander should drift over two seconds")
	}

	a.MoveTo(core.Zero)
	if a.Position().Equals(core.Zero) {
		t.Error("wander should ignore the mouse")
	}
}

func TestOrbitRadiusAndCenter(t *testing.T) {
	o := NewOrbit()
	o.Reset(viewport, 0)
	r := math.Min(viewport.Width(), viewport.Height()) * orbitRadius

	for i := 0; i < 30; i++ {
		o.Step(50, viewport)
		if d := o.Position().Distance(viewport.Center()); math.Abs(d-r) > 1e-6 {
			t.Fatalf("distance from center = %v, expected %v", d, r)
		}
	}

	center := core.NewVector(300, 200)
	o.MoveTo(center)
	o.Step(50, viewport)
	if d := o.Position().Distance(center); math.Abs(d-r) > 1e-6 {
		t.Errorf("after MoveTo distance = %v, expected %v around the new center", d, r)
	}
}
