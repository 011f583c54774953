package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PlaneNormal is the normal of the reference plane pointer rays are cast
// against. The plane passes through the group origin.
var PlaneNormal = mgl32.Vec3{0, 0, 1}

// parallelEpsilon is the smallest |dir . normal| treated as a hit.
const parallelEpsilon = 1e-6

// RayCaster turns a screen pixel into a world-space ray.
type RayCaster interface {
	ScreenRay(x, y float32) (origin, dir mgl32.Vec3)
}

// PointerState is the cached result of the last successful pointer resolve.
type PointerState struct {
	Point mgl32.Vec3 // World-space intersection with the reference plane
	Near  bool       // Point lies within the interaction radius of the origin
	Valid bool       // At least one resolve has hit the plane
}

// PointerResolver caches where the pointer meets the reference plane.
// It is updated once per pointer-move, not per frame.
type PointerResolver struct {
	state PointerState
}

// NewPointerResolver creates a resolver with no pointer position.
func NewPointerResolver() *PointerResolver {
	return &PointerResolver{}
}

// State returns the cached pointer state.
func (r *PointerResolver) State() PointerState {
	return r.state
}

// Resolve casts the pointer at screen (x, y) through caster. A ray that
// misses the plane leaves the cached state untouched.
func (r *PointerResolver) Resolve(caster RayCaster, x, y, radius float32) PointerState {
	origin, dir := caster.ScreenRay(x, y)
	return r.ResolveRay(origin, dir, radius)
}

// ResolveRay is Resolve for a ray already in world space.
func (r *PointerResolver) ResolveRay(origin, dir mgl32.Vec3, radius float32) PointerState {
	point, ok := IntersectPlane(origin, dir, PlaneNormal, 0)
	if !ok {
		return r.state
	}
	r.state = PointerState{
		Point: point,
		Near:  point.Len() < radius,
		Valid: true,
	}
	return r.state
}

// Reset forgets the pointer, as when it leaves the surface.
func (r *PointerResolver) Reset() {
	r.state = PointerState{}
}

// IntersectPlane intersects a ray with the plane normal . p + constant = 0.
// It reports false when the ray runs parallel to the plane or the hit lies
// behind the ray origin.
func IntersectPlane(origin, dir, normal mgl32.Vec3, constant float32) (mgl32.Vec3, bool) {
	denom := normal.Dot(dir)
	if math.Abs(float64(denom)) < parallelEpsilon {
		return mgl32.Vec3{}, false
	}
	t := -(origin.Dot(normal) + constant) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}

// RepulsionStrength is the linear falloff of the pointer push: 1 at the
// pointer, 0 at the radius boundary and beyond.
func RepulsionStrength(distance, radius float32) float32 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return (radius - distance) / radius
}
