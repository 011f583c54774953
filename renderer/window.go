// Package renderer draws the particle group with raylib and adapts the
// raylib window to the game host interfaces.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orb/game"
)

// Window is the raylib game.Host and game.Surface. The raylib window must
// be open before Mount is called, and every method must run on the thread
// that opened it.
type Window struct {
	listeners []*listenerSlot

	width, height float32
	mounted       bool
	cursorIn      bool

	background *BackgroundRenderer
	trail      *TrailRenderer
	particles  *ParticleRenderer

	overlay func(f *game.Frame)
	capture func(x, y float32) bool
}

type listenerSlot struct {
	l game.Listener
}

// NewWindow creates an unmounted window host.
func NewWindow() *Window {
	return &Window{
		background: NewBackgroundRenderer(),
		particles:  NewParticleRenderer(),
	}
}

// SetOverlay registers a 2D draw hook run after the scene, inside the
// same BeginDrawing/EndDrawing pair.
func (w *Window) SetOverlay(fn func(f *game.Frame)) {
	w.overlay = fn
}

// SetInputCapture registers a hit test for UI regions. Drags and scrolls
// that start over a captured point are not forwarded to listeners.
func (w *Window) SetInputCapture(fn func(x, y float32) bool) {
	w.capture = fn
}

// Mount implements game.Host.
func (w *Window) Mount() (game.Surface, error) {
	if !rl.IsWindowReady() {
		return nil, game.ErrNoRenderer
	}
	width, height := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	if width <= 0 || height <= 0 {
		return nil, game.ErrNoMountPoint
	}

	w.width, w.height = width, height
	w.trail = NewTrailRenderer(int32(width), int32(height))
	w.mounted = true
	return w, nil
}

// Listen implements game.Host.
func (w *Window) Listen(l game.Listener) func() {
	slot := &listenerSlot{l: l}
	w.listeners = append(w.listeners, slot)
	return func() {
		for i, s := range w.listeners {
			if s == slot {
				w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
				return
			}
		}
	}
}

// Poll reads raylib input for this frame and dispatches it to listeners.
// Call once per frame before game.Game.Frame.
func (w *Window) Poll() {
	if len(w.listeners) == 0 {
		return
	}

	if rl.IsWindowResized() {
		w.each(func(l game.Listener) { l.Resized() })
	}

	mouse := rl.GetMousePosition()
	captured := w.capture != nil && w.capture(mouse.X, mouse.Y)

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) && !captured {
			w.each(func(l game.Listener) { l.PointerDragged(delta.X, delta.Y) })
		}
		w.each(func(l game.Listener) { l.PointerMoved(mouse.X, mouse.Y) })
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !captured {
		w.each(func(l game.Listener) { l.Scrolled(wheel) })
	}

	onScreen := rl.IsCursorOnScreen()
	if w.cursorIn && !onScreen {
		w.each(func(l game.Listener) { l.PointerLeft() })
	}
	w.cursorIn = onScreen
}

func (w *Window) each(fn func(game.Listener)) {
	// Listeners may detach while being notified
	slots := append([]*listenerSlot(nil), w.listeners...)
	for _, s := range slots {
		fn(s.l)
	}
}

// Size implements game.Surface.
func (w *Window) Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// Resize implements game.Surface.
func (w *Window) Resize(width, height float32) {
	if !w.mounted || (width == w.width && height == w.height) {
		return
	}
	w.width, w.height = width, height
	w.trail.Resize(int32(width), int32(height))
}

// Draw implements game.Surface.
func (w *Window) Draw(f game.Frame) {
	if !w.mounted {
		return
	}
	cam := toCamera3D(f)

	w.trail.Capture(f.Params.Effects.TrailFade, func(alpha float32) {
		w.background.Draw(int32(w.width), int32(w.height), alpha)
		rl.BeginMode3D(cam)
		w.particles.Draw(&f)
		rl.EndMode3D()
	})

	rl.BeginDrawing()
	rl.ClearBackground(w.background.Bottom)
	w.trail.Present()
	if w.overlay != nil {
		w.overlay(&f)
	}
	rl.EndDrawing()
}

// Release implements game.Surface.
func (w *Window) Release() {
	if !w.mounted {
		return
	}
	w.trail.Unload()
	w.mounted = false
}

func toCamera3D(f game.Frame) rl.Camera3D {
	pos := f.Camera.Position()
	target := f.Camera.Target
	up := f.Camera.Up()
	return rl.Camera3D{
		Position:   rl.NewVector3(pos.X(), pos.Y(), pos.Z()),
		Target:     rl.NewVector3(target.X(), target.Y(), target.Z()),
		Up:         rl.NewVector3(up.X(), up.Y(), up.Z()),
		Fovy:       f.Camera.FovY,
		Projection: rl.CameraPerspective,
	}
}
