package game

// HeadlessHost runs a Game without a window. Draw calls are counted and
// otherwise discarded. Input can be injected with the Move, Leave, Drag,
// Scroll and Resize methods.
type HeadlessHost struct {
	Width, Height float32

	listener Listener
	surface  *headlessSurface
}

// NewHeadlessHost creates a host with a virtual viewport of w x h pixels.
func NewHeadlessHost(w, h float32) *HeadlessHost {
	return &HeadlessHost{Width: w, Height: h}
}

// Mount fails with ErrNoMountPoint for an empty viewport.
func (h *HeadlessHost) Mount() (Surface, error) {
	if h.Width <= 0 || h.Height <= 0 {
		return nil, ErrNoMountPoint
	}
	h.surface = &headlessSurface{host: h, w: h.Width, h: h.Height}
	return h.surface, nil
}

func (h *HeadlessHost) Listen(l Listener) func() {
	h.listener = l
	return func() { h.listener = nil }
}

// Attached reports whether a listener is registered.
func (h *HeadlessHost) Attached() bool {
	return h.listener != nil
}

// Draws returns the number of frames drawn on the mounted surface.
func (h *HeadlessHost) Draws() int {
	if h.surface == nil {
		return 0
	}
	return h.surface.draws
}

// Released reports whether the mounted surface has been released.
func (h *HeadlessHost) Released() bool {
	return h.surface != nil && h.surface.released
}

// SurfaceSize returns the size the surface was last resized to.
func (h *HeadlessHost) SurfaceSize() (w, hgt float32) {
	if h.surface == nil {
		return 0, 0
	}
	return h.surface.w, h.surface.h
}

func (h *HeadlessHost) Move(x, y float32) {
	if h.listener != nil {
		h.listener.PointerMoved(x, y)
	}
}

func (h *HeadlessHost) Leave() {
	if h.listener != nil {
		h.listener.PointerLeft()
	}
}

func (h *HeadlessHost) Drag(dx, dy float32) {
	if h.listener != nil {
		h.listener.PointerDragged(dx, dy)
	}
}

func (h *HeadlessHost) Scroll(delta float32) {
	if h.listener != nil {
		h.listener.Scrolled(delta)
	}
}

// Resize changes the virtual viewport and notifies the listener.
func (h *HeadlessHost) Resize(w, hgt float32) {
	h.Width, h.Height = w, hgt
	if h.listener != nil {
		h.listener.Resized()
	}
}

type headlessSurface struct {
	host     *HeadlessHost
	w, h     float32
	draws    int
	released bool
}

func (s *headlessSurface) Size() (float32, float32) {
	return s.host.Width, s.host.Height
}

func (s *headlessSurface) Resize(w, h float32) {
	s.w, s.h = w, h
}

func (s *headlessSurface) Draw(Frame) {
	s.draws++
}

func (s *headlessSurface) Release() {
	s.released = true
}
