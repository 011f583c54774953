package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// fixedCaster returns the same ray for every pixel.
type fixedCaster struct {
	origin, dir mgl32.Vec3
}

func (f fixedCaster) ScreenRay(x, y float32) (mgl32.Vec3, mgl32.Vec3) {
	return f.origin, f.dir
}

func TestIntersectPlane(t *testing.T) {
	tests := []struct {
		name   string
		origin mgl32.Vec3
		dir    mgl32.Vec3
		want   mgl32.Vec3
		ok     bool
	}{
		{"straight down z", mgl32.Vec3{1, 2, 5}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{1, 2, 0}, true},
		{"oblique", mgl32.Vec3{0, 0, 4}, mgl32.Vec3{1, 0, -1}.Normalize(), mgl32.Vec3{4, 0, 0}, true},
		{"parallel", mgl32.Vec3{0, 0, 4}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, false},
		{"pointing away", mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntersectPlane(tt.origin, tt.dir, PlaneNormal, 0)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Sub(tt.want).Len() > 1e-4 {
				t.Errorf("point = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolverNearFlag(t *testing.T) {
	r := NewPointerResolver()

	state := r.Resolve(fixedCaster{mgl32.Vec3{0.5, 0, 5}, mgl32.Vec3{0, 0, -1}}, 0, 0, 1.5)
	if !state.Valid || !state.Near {
		t.Errorf("pointer 0.5 from origin should be near: %+v", state)
	}

	state = r.Resolve(fixedCaster{mgl32.Vec3{3, 0, 5}, mgl32.Vec3{0, 0, -1}}, 0, 0, 1.5)
	if state.Near {
		t.Errorf("pointer 3 from origin should not be near: %+v", state)
	}
	if state.Point.Sub(mgl32.Vec3{3, 0, 0}).Len() > 1e-5 {
		t.Errorf("point = %v, want (3, 0, 0)", state.Point)
	}
}

func TestResolverRetainsOnMiss(t *testing.T) {
	r := NewPointerResolver()
	hit := r.Resolve(fixedCaster{mgl32.Vec3{0.2, 0.1, 5}, mgl32.Vec3{0, 0, -1}}, 0, 0, 1.5)

	// Parallel ray: no intersection, nothing changes
	miss := r.Resolve(fixedCaster{mgl32.Vec3{0, 0, 5}, mgl32.Vec3{1, 0, 0}}, 0, 0, 1.5)
	if miss != hit {
		t.Errorf("state after parallel ray = %+v, want retained %+v", miss, hit)
	}
	if r.State() != hit {
		t.Errorf("State() = %+v, want %+v", r.State(), hit)
	}
}

func TestResolverReset(t *testing.T) {
	r := NewPointerResolver()
	r.ResolveRay(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, 1)
	r.Reset()
	if r.State().Valid || r.State().Near {
		t.Errorf("state after Reset = %+v", r.State())
	}
}

func TestRepulsionStrength(t *testing.T) {
	tests := []struct {
		name     string
		distance float32
		radius   float32
		want     float32
	}{
		{"at pointer", 0, 1.5, 1},
		{"one unit out", 1, 1.5, 1.0 / 3.0},
		{"boundary", 1.5, 1.5, 0},
		{"outside", 4, 1.5, 0},
		{"zero radius", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepulsionStrength(tt.distance, tt.radius)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("RepulsionStrength(%v, %v) = %v, want %v", tt.distance, tt.radius, got, tt.want)
			}
		})
	}
}

func TestRepulsionStrengthMonotonic(t *testing.T) {
	const radius = 2
	prev := RepulsionStrength(radius, radius)
	for d := float32(radius) - 0.01; d >= 0; d -= 0.01 {
		s := RepulsionStrength(d, radius)
		if s <= prev {
			t.Fatalf("strength at %v = %v, not above %v", d, s, prev)
		}
		if s > 1 {
			t.Fatalf("strength at %v = %v exceeds 1", d, s)
		}
		prev = s
	}
}
