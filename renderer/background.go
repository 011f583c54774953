package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the view with a vertical gradient.
type BackgroundRenderer struct {
	Top    rl.Color
	Bottom rl.Color
}

// NewBackgroundRenderer creates the default dark gradient.
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{
		Top:    rl.NewColor(8, 10, 24, 255),
		Bottom: rl.NewColor(2, 2, 6, 255),
	}
}

// Draw paints the gradient at the given opacity.
func (b *BackgroundRenderer) Draw(width, height int32, alpha float32) {
	rl.DrawRectangleGradientV(0, 0, width, height,
		rl.ColorAlpha(b.Top, alpha),
		rl.ColorAlpha(b.Bottom, alpha),
	)
}
