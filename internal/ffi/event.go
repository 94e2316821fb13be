package ffi

import (
	"encoding/binary"
)

// EventSize is sizeof(SDL_Event).
const EventSize = 56

// Event is a raw SDL_Event in native (little-endian) byte order. Accessors
// decode the union member that matches Type; callers must check Type first.
type Event [EventSize]byte

// EventType is an SDL_EventType.
type EventType uint32

const (
	EventQuit            EventType = 0x100
	EventWindow          EventType = 0x200
	EventKeyDown         EventType = 0x300
	EventKeyUp           EventType = 0x301
	EventMouseMotion     EventType = 0x400
	EventMouseButtonDown EventType = 0x401
	EventMouseButtonUp   EventType = 0x402
	EventMouseWheel      EventType = 0x403
)

// WindowEventID is an SDL_WindowEventID.
type WindowEventID uint8

const (
	WindowEventResized     WindowEventID = 5
	WindowEventSizeChanged WindowEventID = 6
	WindowEventClose       WindowEventID = 14
)

// Scancode is a physical key position (SDL_Scancode).
type Scancode int32

const (
	ScancodeA         Scancode = 4
	ScancodeZ         Scancode = 29
	ScancodeEnter     Scancode = 40
	ScancodeEscape    Scancode = 41
	ScancodeBackspace Scancode = 42
	ScancodeTab       Scancode = 43
	ScancodeSpace     Scancode = 44
	ScancodeF1        Scancode = 58
	ScancodeF12       Scancode = 69
	ScancodeRight     Scancode = 79
	ScancodeLeft      Scancode = 80
	ScancodeDown      Scancode = 81
	ScancodeUp        Scancode = 82
)

func (e *Event) u32(off int) uint32 { return binary.LittleEndian.Uint32(e[off:]) }
func (e *Event) i32(off int) int32  { return int32(e.u32(off)) }

// Type returns the event type.
func (e *Event) Type() EventType {
	return EventType(e.u32(0))
}

// Window decodes an SDL_WindowEvent.
func (e *Event) Window() (id WindowEventID, data1, data2 int32) {
	return WindowEventID(e[12]), e.i32(16), e.i32(20)
}

// Keyboard decodes an SDL_KeyboardEvent.
func (e *Event) Keyboard() (code Scancode, repeat bool) {
	return Scancode(e.i32(16)), e[13] != 0
}

// MouseMotion decodes the pointer position of an SDL_MouseMotionEvent.
func (e *Event) MouseMotion() (x, y int32) {
	return e.i32(20), e.i32(24)
}

// MouseButton decodes an SDL_MouseButtonEvent.
func (e *Event) MouseButton() (button uint8, x, y int32) {
	return e[16], e.i32(20), e.i32(24)
}

// MouseWheel decodes the scroll amounts of an SDL_MouseWheelEvent.
func (e *Event) MouseWheel() (x, y int32) {
	return e.i32(16), e.i32(20)
}
