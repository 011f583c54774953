package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orb/game"
)

// ControlPanel renders the parameter sliders and applies changes through
// its Controls handle.
type ControlPanel struct {
	controls Controls
	renderer *Renderer
	sections []SectionDescriptor
	pending  map[string]*game.PendingEdit

	x, y    int32
	width   int32
	height  int32 // Height of the last drawn panel
	visible bool
}

// NewControlPanel creates a visible panel at (x, y) driving c.
func NewControlPanel(c Controls, x, y, width int32) *ControlPanel {
	p := &ControlPanel{
		controls: c,
		renderer: NewRenderer(),
		sections: DefaultSections(c.MaxCount()),
		pending:  make(map[string]*game.PendingEdit),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
	for _, s := range p.sections {
		for _, sd := range s.Sliders {
			if sd.Deferred {
				p.pending[sd.ID] = &game.PendingEdit{}
			}
		}
	}
	return p
}

// SetVisible shows or hides the panel.
func (c *ControlPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlPanel) IsVisible() bool {
	return c.visible
}

// SetPosition moves the panel.
func (c *ControlPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Contains reports whether a screen point lies on the visible panel.
func (c *ControlPanel) Contains(px, py float32) bool {
	if !c.visible || c.height == 0 {
		return false
	}
	bounds := rl.Rectangle{X: float32(c.x), Y: float32(c.y), Width: float32(c.width), Height: float32(c.height)}
	return rl.CheckCollisionPointRec(rl.Vector2{X: px, Y: py}, bounds)
}

// Draw renders the panel and applies any slider or button changes.
func (c *ControlPanel) Draw() {
	if !c.visible {
		return
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	inner := c.width - padding*2

	// Size from content: title, headers, sliders, two button rows
	rows := int32(1)
	for _, s := range c.sections {
		rows += 1 + int32(len(s.Sliders))
	}
	c.height = rows*lineHeight + 2*(lineHeight+6) + padding*3
	r.DrawPanel(c.x, c.y, c.width, c.height)

	x := c.x + padding
	y := c.y + padding

	rl.DrawText("Controls", x, y, 16, rl.White)
	y += lineHeight + 2

	released := !rl.IsMouseButtonDown(rl.MouseButtonLeft)
	params := c.controls.Params()
	for _, section := range c.sections {
		y = r.DrawSectionHeader(x, y, section.Title)
		for _, sd := range section.Sliders {
			cur := sd.Get(params)
			edit := c.pending[sd.ID]
			if edit != nil {
				cur = edit.Value(cur)
			}

			var next float32
			next, y = r.DrawSlider(x, y, inner, sd.Label, sd.Format, cur, sd.Min, sd.Max)
			switch {
			case edit != nil:
				if next != cur {
					edit.Set(next)
				}
				if released && edit.Commit(func(v float32) { sd.Set(c.controls, v) }) {
					params = c.controls.Params()
				}
			case next != cur:
				sd.Set(c.controls, next)
				params = c.controls.Params()
			}
		}
	}

	y += 4
	half := (inner - 6) / 2
	if r.DrawButton(x, y, half, "Cluster") {
		c.controls.SetClusterValue(1)
	}
	if r.DrawButton(x+half+6, y, half, "Scatter") {
		c.controls.SetScatterValue(1)
	}
	y += lineHeight + 6

	streaks := params.Effects.Streaks
	if r.DrawButton(x, y, inner, toggleText(streaks, "Streaks: On", "Streaks: Off")) {
		c.controls.SetStreaks(!streaks)
	}
}
