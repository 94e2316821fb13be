package framehost_test

import (
	"testing"

	"github.com/agiangrant/framehost"
	"github.com/agiangrant/framehost/headless"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	router  *framehost.EventRouter
	surface *headless.Surface
	state   framehost.SurfaceState
	passed  []framehost.Event
}

func newRouterFixture(t *testing.T, scale float64, actions *framehost.ActionMap) *routerFixture {
	t.Helper()
	p := headless.New(headless.WithScale(scale))
	wm := framehost.NewWindowManager(p, framehost.DefaultContextConfig(), zerolog.Nop())
	s, size, err := wm.Create("Game", 960, 600)
	require.NoError(t, err)

	f := &routerFixture{surface: p.Surface()}
	f.state.Sync(s.Graphics(), size)
	f.router = framehost.NewEventRouter(wm, actions, zerolog.Nop())
	f.router.SetPassthrough(func(ev framehost.Event) { f.passed = append(f.passed, ev) })
	return f
}

func (f *routerFixture) drain(events ...framehost.Event) framehost.HandleResult {
	f.surface.Push(events...)
	return f.router.Drain(f.surface, &f.state)
}

func TestRouteResizeAtRetinaScale(t *testing.T) {
	f := newRouterFixture(t, 2, nil)
	require.Equal(t, 1920, f.state.Size.HighDPIWidth)

	res := f.drain(framehost.Resized(1280, 720))

	assert.Equal(t, framehost.Continue, res)
	assert.Equal(t, framehost.WindowSize{Width: 1280, Height: 720, HighDPIWidth: 2560, HighDPIHeight: 1440}, f.state.Size)
	assert.Equal(t, framehost.Viewport{X: 0, Y: 0, Width: 2560, Height: 1440}, f.state.Viewport)

	vp, ok := f.surface.Recorder().LastViewport()
	require.True(t, ok)
	assert.Equal(t, f.state.Viewport, vp)
	assert.Empty(t, f.passed)
}

func TestDrainQuitAtAnyPosition(t *testing.T) {
	quits := []framehost.Event{{Kind: framehost.EventQuit}, {Kind: framehost.EventWindowClose}}
	for _, quit := range quits {
		for pos := 0; pos < 5; pos++ {
			f := newRouterFixture(t, 1, nil)
			events := make([]framehost.Event, 5)
			for i := range events {
				events[i] = framehost.Event{Kind: framehost.EventMouseMotion, X: i}
			}
			events[pos] = quit

			res := f.drain(events...)

			assert.Equal(t, framehost.Quit, res, "%v at %d", quit.Kind, pos)
			assert.Len(t, f.passed, pos, "events after the quit are not dispatched")
			assert.Zero(t, f.surface.Pending(), "queue drained")
		}
	}
}

func TestDrainWithoutQuit(t *testing.T) {
	f := newRouterFixture(t, 1, nil)
	res := f.drain(
		framehost.Event{Kind: framehost.EventMouseMotion, X: 10, Y: 20},
		framehost.KeyPressed(framehost.KeyA),
		framehost.Event{Kind: framehost.EventKeyUp, Key: framehost.KeyA},
		framehost.Resized(800, 500),
	)
	assert.Equal(t, framehost.Continue, res)
	assert.Len(t, f.passed, 3)
	assert.Equal(t, 800, f.state.Size.Width)

	assert.Equal(t, framehost.Continue, f.drain())
}

func TestRouteKeyDownDispatchesActions(t *testing.T) {
	actions := framehost.DefaultActionMap()
	toggles := 0
	actions.On(framehost.ActionToggleProfiler, func() { toggles++ })
	f := newRouterFixture(t, 1, actions)

	f.drain(
		framehost.KeyPressed(framehost.KeyP),
		framehost.Event{Kind: framehost.EventKeyDown, Key: framehost.KeyP, Repeat: true},
		framehost.KeyPressed(framehost.KeyC),
	)

	assert.Equal(t, 1, toggles)
	// The repeat and the unhandled camera key fall through.
	assert.Len(t, f.passed, 2)
	assert.Same(t, actions, f.router.Actions())
}

func TestHandleResultString(t *testing.T) {
	if got := framehost.Quit.String(); got != "Quit" {
		t.Errorf("Quit.String() = %q, want %q", got, "Quit")
	}
	if got := framehost.Continue.String(); got != "Continue" {
		t.Errorf("Continue.String() = %q, want %q", got, "Continue")
	}
}

func TestEventIsQuit(t *testing.T) {
	tests := []struct {
		ev   framehost.Event
		want bool
	}{
		{framehost.Event{Kind: framehost.EventQuit}, true},
		{framehost.Event{Kind: framehost.EventWindowClose}, true},
		{framehost.Resized(10, 10), false},
		{framehost.KeyPressed(framehost.KeyA), false},
		{framehost.Event{Kind: framehost.EventMouseMotion}, false},
	}
	for _, tt := range tests {
		if got := tt.ev.IsQuit(); got != tt.want {
			t.Errorf("%v.IsQuit() = %v, want %v", tt.ev.Kind, got, tt.want)
		}
	}
}
