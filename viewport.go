package framehost

// Viewport is the framebuffer region the pipeline renders into, in physical pixels.
type Viewport struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// ViewportForWindow returns a viewport covering the whole physical framebuffer.
// It depends only on the high-DPI dimensions of size.
func ViewportForWindow(size WindowSize) Viewport {
	return Viewport{
		X:      0,
		Y:      0,
		Width:  int32(size.HighDPIWidth),
		Height: int32(size.HighDPIHeight),
	}
}

// Apply makes v the active viewport.
func (v Viewport) Apply(g Graphics) {
	g.Viewport(v.X, v.Y, v.Width, v.Height)
}

// SurfaceState is the per-surface state that persists across loop iterations.
type SurfaceState struct {
	Size     WindowSize
	Viewport Viewport
}

// Sync recomputes the viewport from size and applies it.
func (s *SurfaceState) Sync(g Graphics, size WindowSize) {
	s.Size = size
	s.Viewport = ViewportForWindow(size)
	s.Viewport.Apply(g)
}
