package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawSlider draws a labelled raygui slider and returns the (possibly
// changed) value and the new Y position.
func (r *Renderer) DrawSlider(x, y, width int32, label, format string, value, min, max float32) (float32, int32) {
	t := r.Theme
	rl.DrawText(label, x, y+1, t.FontSize, t.LabelColor)

	sliderW := width - t.LabelWidth - t.ValueWidth
	bounds := rl.Rectangle{
		X:      float32(x + t.LabelWidth),
		Y:      float32(y),
		Width:  float32(sliderW),
		Height: float32(t.SliderHeight),
	}
	value = gui.SliderBar(bounds, "", "", value, min, max)

	rl.DrawText(fmt.Sprintf(format, value), x+t.LabelWidth+sliderW+6, y+1, t.FontSize, t.ValueColor)
	return value, y + t.LineHeight
}

// DrawButton draws a raygui button and reports whether it was clicked.
func (r *Renderer) DrawButton(x, y, width int32, text string) bool {
	bounds := rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width),
		Height: float32(r.Theme.LineHeight + 2),
	}
	return gui.Button(bounds, text)
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
