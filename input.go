package framehost

// Action is a named input action that keys can be bound to.
type Action string

const (
	ActionToggleProfiler   Action = "toggle-profiler"
	ActionToggleDebugLines Action = "toggle-debug-lines"
	ActionSwitchCamera     Action = "switch-camera"
)

// ActionMap is a dispatch table from keys to actions to handlers.
// Bindings without a handler are ignored.
type ActionMap struct {
	bindings map[Key]Action
	handlers map[Action]func()
}

// NewActionMap creates an empty action map.
func NewActionMap() *ActionMap {
	return &ActionMap{
		bindings: make(map[Key]Action),
		handlers: make(map[Action]func()),
	}
}

// DefaultActionMap binds the debug keys: C switches camera, I toggles the
// debug-line overlay and P toggles the profiler. No handlers are registered.
func DefaultActionMap() *ActionMap {
	m := NewActionMap()
	m.Bind(KeyC, ActionSwitchCamera)
	m.Bind(KeyI, ActionToggleDebugLines)
	m.Bind(KeyP, ActionToggleProfiler)
	return m
}

// Bind maps key to action, replacing any previous binding for key.
func (m *ActionMap) Bind(key Key, action Action) {
	m.bindings[key] = action
}

// Unbind removes the binding for key.
func (m *ActionMap) Unbind(key Key) {
	delete(m.bindings, key)
}

// On registers fn as the handler for action.
func (m *ActionMap) On(action Action, fn func()) {
	if fn == nil {
		delete(m.handlers, action)
		return
	}
	m.handlers[action] = fn
}

// Lookup returns the action bound to key.
func (m *ActionMap) Lookup(key Key) (Action, bool) {
	a, ok := m.bindings[key]
	return a, ok
}

// Dispatch runs the handler of the action bound to key.
// Returns true if a handler ran.
func (m *ActionMap) Dispatch(key Key) bool {
	action, ok := m.bindings[key]
	if !ok {
		return false
	}
	fn, ok := m.handlers[action]
	if !ok {
		return false
	}
	fn()
	return true
}
