package framehost

import "github.com/rs/zerolog"

// HandleResult tells the loop whether to keep running.
type HandleResult uint8

const (
	Continue HandleResult = iota
	Quit
)

func (r HandleResult) String() string {
	if r == Quit {
		return "Quit"
	}
	return "Continue"
}

// EventRouter dispatches window lifecycle events to the window manager and
// viewport, key presses to the action map and everything else to an optional
// passthrough hook.
type EventRouter struct {
	windows     *WindowManager
	actions     *ActionMap
	passthrough func(Event)
	log         zerolog.Logger
}

// NewEventRouter creates a router. actions may be nil.
func NewEventRouter(windows *WindowManager, actions *ActionMap, log zerolog.Logger) *EventRouter {
	if actions == nil {
		actions = NewActionMap()
	}
	return &EventRouter{windows: windows, actions: actions, log: log}
}

// SetPassthrough registers fn to receive events the router does not handle.
func (r *EventRouter) SetPassthrough(fn func(Event)) {
	r.passthrough = fn
}

// Actions returns the router's action map.
func (r *EventRouter) Actions() *ActionMap {
	return r.actions
}

// Route handles a single event.
func (r *EventRouter) Route(ev Event, s Surface, state *SurfaceState) HandleResult {
	if ev.IsQuit() {
		r.log.Debug().Stringer("event", ev.Kind).Msg("quit requested")
		return Quit
	}

	switch ev.Kind {
	case EventWindowResized:
		size := r.windows.Resize(s, ev.Width, ev.Height)
		state.Sync(s.Graphics(), size)
		return Continue

	case EventKeyDown:
		if !ev.Repeat && r.actions.Dispatch(ev.Key) {
			return Continue
		}
	}

	if r.passthrough != nil {
		r.passthrough(ev)
	}
	return Continue
}

// Drain empties the surface's event queue. Once a quit-class event has been
// seen the rest of the queue is still consumed but no longer dispatched.
// Returns Quit if any event in the batch asked to quit.
func (r *EventRouter) Drain(s Surface, state *SurfaceState) HandleResult {
	result := Continue
	for {
		ev, ok := s.PollEvent()
		if !ok {
			return result
		}
		if result == Quit {
			continue
		}
		result = r.Route(ev, s, state)
	}
}
