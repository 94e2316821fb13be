package framehost

import "fmt"

// EventKind identifies the type of a platform event.
type EventKind uint8

const (
	EventUnknown EventKind = iota
	// EventQuit is an application-level quit request (e.g. SIGINT, last window closed).
	EventQuit
	// EventWindowClose is the window's close button.
	EventWindowClose
	// EventWindowResized carries the new logical size.
	EventWindowResized
	EventKeyDown
	EventKeyUp
	EventMouseMotion
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseWheel
)

var eventKindNames = [...]string{
	EventUnknown:         "Unknown",
	EventQuit:            "Quit",
	EventWindowClose:     "WindowClose",
	EventWindowResized:   "WindowResized",
	EventKeyDown:         "KeyDown",
	EventKeyUp:           "KeyUp",
	EventMouseMotion:     "MouseMotion",
	EventMouseButtonDown: "MouseButtonDown",
	EventMouseButtonUp:   "MouseButtonUp",
	EventMouseWheel:      "MouseWheel",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a platform-neutral event.
type Event struct {
	Kind EventKind

	// Width and Height are the new logical size for EventWindowResized.
	Width  int
	Height int

	// Key and Repeat are set for keyboard events.
	Key    Key
	Repeat bool

	// X and Y are the pointer position (or wheel delta for EventMouseWheel).
	X int
	Y int
}

// IsQuit returns true for events that end the loop.
func (e Event) IsQuit() bool {
	return e.Kind == EventQuit || e.Kind == EventWindowClose
}

// Resized returns a window resize event.
func Resized(width, height int) Event {
	return Event{Kind: EventWindowResized, Width: width, Height: height}
}

// KeyPressed returns a key press event.
func KeyPressed(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Key is a layout-independent physical key.
type Key uint16

const (
	KeyUnknown Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Editing / navigation
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	switch k {
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	}
	return "Unknown"
}
