package framehost_test

import (
	"testing"

	"github.com/agiangrant/framehost"
	"github.com/agiangrant/framehost/headless"
	"github.com/agiangrant/framehost/ui"
	"github.com/stretchr/testify/assert"
)

func TestViewportForWindow(t *testing.T) {
	tests := []struct {
		size framehost.WindowSize
		want framehost.Viewport
	}{
		{framehost.NewWindowSize(960, 600, 1920, 1200), framehost.Viewport{Width: 1920, Height: 1200}},
		{framehost.NewWindowSize(1280, 720, 1280, 720), framehost.Viewport{Width: 1280, Height: 720}},
		{framehost.NewWindowSize(800, 500, 0, 0), framehost.Viewport{Width: 800, Height: 500}},
	}
	for _, tt := range tests {
		if got := framehost.ViewportForWindow(tt.size); got != tt.want {
			t.Errorf("ViewportForWindow(%+v) = %+v, want %+v", tt.size, got, tt.want)
		}
	}
}

func TestViewportIdempotent(t *testing.T) {
	size := framehost.NewWindowSize(1280, 720, 2560, 1440)
	first := framehost.ViewportForWindow(size)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, framehost.ViewportForWindow(size))
	}

	var rec headless.Recorder
	var state framehost.SurfaceState
	state.Sync(&rec, size)
	state.Sync(&rec, size)
	assert.Equal(t, []framehost.Viewport{first, first}, rec.Viewports)
	assert.Equal(t, size, state.Size)
}

func TestColorBuffer(t *testing.T) {
	var rec headless.Recorder
	cb := framehost.NewColorBuffer()
	cb.SetClearColor(&rec, ui.NewColor(0.3, 0.3, 0.5))
	cb.Clear(&rec)

	assert.Equal(t, [][4]float32{{0.3, 0.3, 0.5, 1}}, rec.ClearColors)
	assert.Equal(t, []framehost.ClearMask{framehost.ClearColorBuffer}, rec.Clears)
}
