package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// TrailRenderer keeps the scene in an offscreen target that is only
// partially overwritten each frame, leaving fading afterimages.
type TrailRenderer struct {
	target        rl.RenderTexture2D
	width, height int32
	loaded        bool
}

// NewTrailRenderer allocates a target of the given size.
func NewTrailRenderer(width, height int32) *TrailRenderer {
	t := &TrailRenderer{}
	t.load(width, height)
	return t
}

func (t *TrailRenderer) load(width, height int32) {
	t.target = rl.LoadRenderTexture(width, height)
	t.width, t.height = width, height
	t.loaded = true
}

// Resize reallocates the target. Existing trails are dropped.
func (t *TrailRenderer) Resize(width, height int32) {
	if width == t.width && height == t.height && t.loaded {
		return
	}
	t.Unload()
	t.load(width, height)
}

// Capture renders draw into the target. fade in [0, 1] controls how much
// of the previous frame survives; draw receives the opacity it should use
// for its backdrop.
func (t *TrailRenderer) Capture(fade float32, draw func(alpha float32)) {
	if !t.loaded {
		return
	}
	alpha := 1 - fade*0.95

	rl.BeginTextureMode(t.target)
	if fade <= 0 {
		rl.ClearBackground(rl.Blank)
	}
	draw(alpha)
	rl.EndTextureMode()
}

// Present blits the target to the screen.
func (t *TrailRenderer) Present() {
	if !t.loaded {
		return
	}
	// Render textures are stored upside down
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(t.width), Height: -float32(t.height)}
	rl.DrawTextureRec(t.target.Texture, src, rl.Vector2{}, rl.White)
}

// Unload frees the target.
func (t *TrailRenderer) Unload() {
	if t.loaded {
		rl.UnloadRenderTexture(t.target)
		t.loaded = false
	}
}
