// Package camera provides an orbit camera for viewing the particle group.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// maxElevation keeps the camera just short of the poles so the up vector
// never lines up with the view direction.
const maxElevation = math.Pi/2 - 0.01

// Camera orbits a target point. Drag input feeds angular velocity which
// Update applies and damps once per frame.
type Camera struct {
	// Orbit target in world coordinates
	Target mgl32.Vec3

	// Spherical coordinates around the target (radians, world units)
	Azimuth, Elevation, Distance float32

	// Vertical field of view in degrees and clip planes
	FovY, Near, Far float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinDistance, MaxDistance float32

	// Fraction of angular velocity removed per Update (0 = never settles)
	Damping float32

	// Radians per dragged pixel
	OrbitSpeed float32

	azimuthVel, elevationVel float32
	initialDistance          float32
}

// Options configures a new camera.
type Options struct {
	FovY, Near, Far          float32
	Distance                 float32
	MinDistance, MaxDistance float32
	Damping, OrbitSpeed      float32
}

// New creates a camera looking at the origin down -Z from the given distance.
func New(viewportW, viewportH float32, opts Options) *Camera {
	c := &Camera{
		FovY:            opts.FovY,
		Near:            opts.Near,
		Far:             opts.Far,
		Distance:        opts.Distance,
		ViewportW:       viewportW,
		ViewportH:       viewportH,
		MinDistance:     opts.MinDistance,
		MaxDistance:     opts.MaxDistance,
		Damping:         opts.Damping,
		OrbitSpeed:      opts.OrbitSpeed,
		initialDistance: opts.Distance,
	}
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
	return c
}

// Position returns the camera eye in world coordinates.
func (c *Camera) Position() mgl32.Vec3 {
	cosEl := float32(math.Cos(float64(c.Elevation)))
	offset := mgl32.Vec3{
		c.Distance * cosEl * float32(math.Sin(float64(c.Azimuth))),
		c.Distance * float32(math.Sin(float64(c.Elevation))),
		c.Distance * cosEl * float32(math.Cos(float64(c.Azimuth))),
	}
	return c.Target.Add(offset)
}

// Up returns the camera up vector.
func (c *Camera) Up() mgl32.Vec3 {
	return mgl32.Vec3{0, 1, 0}
}

// Aspect returns the viewport aspect ratio.
func (c *Camera) Aspect() float32 {
	if c.ViewportH <= 0 {
		return 1
	}
	return c.ViewportW / c.ViewportH
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, c.Up())
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect(), c.Near, c.Far)
}

// ScreenRay returns the world-space ray through screen pixel (x, y), with
// y growing downward as in window coordinates. dir is normalized.
func (c *Camera) ScreenRay(x, y float32) (origin, dir mgl32.Vec3) {
	ndcX := 2*x/c.ViewportW - 1
	ndcY := 1 - 2*y/c.ViewportH

	inv := c.Projection().Mul4(c.View()).Inv()
	near := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})

	nearPt := near.Vec3().Mul(1 / near.W())
	farPt := far.Vec3().Mul(1 / far.W())

	return c.Position(), farPt.Sub(nearPt).Normalize()
}

// Resize updates viewport dimensions. Repeated calls with the same size are no-ops.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Orbit adds angular velocity from a pointer drag of (dx, dy) pixels.
func (c *Camera) Orbit(dx, dy float32) {
	c.azimuthVel -= dx * c.OrbitSpeed
	c.elevationVel += dy * c.OrbitSpeed
}

// Update applies pending orbit velocity and damps it.
func (c *Camera) Update() {
	c.Azimuth += c.azimuthVel
	c.Elevation = clamp(c.Elevation+c.elevationVel, -maxElevation, maxElevation)

	keep := 1 - c.Damping
	c.azimuthVel *= keep
	c.elevationVel *= keep
	if absf(c.azimuthVel) < 1e-6 {
		c.azimuthVel = 0
	}
	if absf(c.elevationVel) < 1e-6 {
		c.elevationVel = 0
	}
}

// Settled reports whether no orbit motion is pending.
func (c *Camera) Settled() bool {
	return c.azimuthVel == 0 && c.elevationVel == 0
}

// ZoomBy multiplies the distance to the target by factor, clamped to limits.
func (c *Camera) ZoomBy(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance = clamp(c.Distance*factor, c.MinDistance, c.MaxDistance)
}

// Reset returns the camera to the initial orbit.
func (c *Camera) Reset() {
	c.Azimuth = 0
	c.Elevation = 0
	c.Distance = clamp(c.initialDistance, c.MinDistance, c.MaxDistance)
	c.azimuthVel = 0
	c.elevationVel = 0
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
