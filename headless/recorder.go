package headless

import (
	"fmt"

	"github.com/agiangrant/framehost"
)

// Recorder is a framehost.Graphics that records calls instead of issuing them.
type Recorder struct {
	Viewports   []framehost.Viewport
	ClearColors [][4]float32
	Clears      []framehost.ClearMask
	Enables     []framehost.Capability

	// Calls lists every call in order, e.g. "Viewport(0,0,1920,1200)".
	Calls []string
}

// Viewport implements framehost.Graphics.
func (r *Recorder) Viewport(x, y, width, height int32) {
	r.Viewports = append(r.Viewports, framehost.Viewport{X: x, Y: y, Width: width, Height: height})
	r.Calls = append(r.Calls, fmt.Sprintf("Viewport(%d,%d,%d,%d)", x, y, width, height))
}

// ClearColor implements framehost.Graphics.
func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.ClearColors = append(r.ClearColors, [4]float32{red, green, blue, alpha})
	r.Calls = append(r.Calls, fmt.Sprintf("ClearColor(%g,%g,%g,%g)", red, green, blue, alpha))
}

// Clear implements framehost.Graphics.
func (r *Recorder) Clear(mask framehost.ClearMask) {
	r.Clears = append(r.Clears, mask)
	r.Calls = append(r.Calls, fmt.Sprintf("Clear(%#x)", uint32(mask)))
}

// Enable implements framehost.Graphics.
func (r *Recorder) Enable(c framehost.Capability) {
	r.Enables = append(r.Enables, c)
	r.Calls = append(r.Calls, fmt.Sprintf("Enable(%#x)", uint32(c)))
}

// LastViewport returns the most recently applied viewport.
func (r *Recorder) LastViewport() (framehost.Viewport, bool) {
	if len(r.Viewports) == 0 {
		return framehost.Viewport{}, false
	}
	return r.Viewports[len(r.Viewports)-1], true
}
