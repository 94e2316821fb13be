package sdl

import (
	"github.com/agiangrant/framehost"
	"github.com/agiangrant/framehost/internal/ffi"
)

// translate converts a raw SDL event. Returns false for events the host does
// not route.
func translate(raw *ffi.Event) (framehost.Event, bool) {
	switch raw.Type() {
	case ffi.EventQuit:
		return framehost.Event{Kind: framehost.EventQuit}, true

	case ffi.EventWindow:
		id, w, h := raw.Window()
		switch id {
		// SIZE_CHANGED follows every RESIZED and also covers programmatic
		// changes, so RESIZED itself is dropped.
		case ffi.WindowEventSizeChanged:
			return framehost.Resized(int(w), int(h)), true
		case ffi.WindowEventClose:
			return framehost.Event{Kind: framehost.EventWindowClose}, true
		}
		return framehost.Event{}, false

	case ffi.EventKeyDown, ffi.EventKeyUp:
		code, repeat := raw.Keyboard()
		kind := framehost.EventKeyDown
		if raw.Type() == ffi.EventKeyUp {
			kind = framehost.EventKeyUp
		}
		return framehost.Event{Kind: kind, Key: keyFromScancode(code), Repeat: repeat}, true

	case ffi.EventMouseMotion:
		x, y := raw.MouseMotion()
		return framehost.Event{Kind: framehost.EventMouseMotion, X: int(x), Y: int(y)}, true

	case ffi.EventMouseButtonDown, ffi.EventMouseButtonUp:
		_, x, y := raw.MouseButton()
		kind := framehost.EventMouseButtonDown
		if raw.Type() == ffi.EventMouseButtonUp {
			kind = framehost.EventMouseButtonUp
		}
		return framehost.Event{Kind: kind, X: int(x), Y: int(y)}, true

	case ffi.EventMouseWheel:
		x, y := raw.MouseWheel()
		return framehost.Event{Kind: framehost.EventMouseWheel, X: int(x), Y: int(y)}, true
	}
	return framehost.Event{}, false
}

var namedScancodes = map[ffi.Scancode]framehost.Key{
	ffi.ScancodeEnter:     framehost.KeyEnter,
	ffi.ScancodeEscape:    framehost.KeyEscape,
	ffi.ScancodeBackspace: framehost.KeyBackspace,
	ffi.ScancodeTab:       framehost.KeyTab,
	ffi.ScancodeSpace:     framehost.KeySpace,
	ffi.ScancodeRight:     framehost.KeyRight,
	ffi.ScancodeLeft:      framehost.KeyLeft,
	ffi.ScancodeDown:      framehost.KeyDown,
	ffi.ScancodeUp:        framehost.KeyUp,
}

func keyFromScancode(code ffi.Scancode) framehost.Key {
	switch {
	case code >= ffi.ScancodeA && code <= ffi.ScancodeZ:
		return framehost.KeyA + framehost.Key(code-ffi.ScancodeA)
	case code >= ffi.ScancodeF1 && code <= ffi.ScancodeF12:
		return framehost.KeyF1 + framehost.Key(code-ffi.ScancodeF1)
	}
	if k, ok := namedScancodes[code]; ok {
		return k
	}
	return framehost.KeyUnknown
}
