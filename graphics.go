package framehost

import "github.com/agiangrant/framehost/ui"

// ClearMask selects which buffers Clear resets. Values match OpenGL.
type ClearMask uint32

const (
	ClearDepthBuffer ClearMask = 0x00000100
	ClearColorBuffer ClearMask = 0x00004000
)

// Capability is a pipeline toggle passed to Enable. Values match OpenGL.
type Capability uint32

const (
	CapCullFace  Capability = 0x0B44
	CapDepthTest Capability = 0x0B71
)

// Graphics is the narrow set of pipeline calls the host issues.
type Graphics interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Enable(c Capability)
}

// ColorBuffer owns the clear color of the default framebuffer.
type ColorBuffer struct {
	Color ui.Color
}

// NewColorBuffer creates a color buffer with a black clear color.
func NewColorBuffer() *ColorBuffer {
	return &ColorBuffer{}
}

// SetClearColor records c and hands it to the pipeline.
func (b *ColorBuffer) SetClearColor(g Graphics, c ui.Color) {
	b.Color = c
	g.ClearColor(c.RGBA())
}

// Clear clears the color attachment with the current clear color.
func (b *ColorBuffer) Clear(g Graphics) {
	g.Clear(ClearColorBuffer)
}
