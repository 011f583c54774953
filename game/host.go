package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orb/camera"
	"github.com/pthm-cable/orb/systems"
)

// Host supplies the drawable surface and delivers input events.
type Host interface {
	// Mount returns the surface to draw into. It fails with ErrNoMountPoint
	// or ErrNoRenderer when the environment cannot render.
	Mount() (Surface, error)

	// Listen registers l for input events. The returned func detaches it.
	Listen(l Listener) (detach func())
}

// Surface is a mounted draw target.
type Surface interface {
	Size() (w, h float32)
	Resize(w, h float32)
	Draw(f Frame)
	Release()
}

// Listener receives host input events between frames.
type Listener interface {
	PointerMoved(x, y float32)
	PointerDragged(dx, dy float32)
	PointerLeft()
	Scrolled(delta float32)
	Resized()
}

// Frame is everything a surface needs to draw one frame. Particles is only
// valid for the duration of Draw.
type Frame struct {
	Index int32
	Now   float32

	Camera    *camera.Camera
	Particles []systems.Particle
	Rotation  mgl32.Mat3 // Group-local to world
	Pointer   systems.PointerState
	Params    Params
	Stats     systems.MotionStats
}

// WorldPosition returns a particle's position after the group rotation.
func (f *Frame) WorldPosition(p *systems.Particle) mgl32.Vec3 {
	return f.Rotation.Mul3x1(p.Position)
}
