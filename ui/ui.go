// Package ui holds the value types shared by the schema and mutator packages.
package ui

import "fmt"

// Length is a size along one axis in logical pixels.
type Length float32

func (l Length) String() string {
	return fmt.Sprintf("%gpx", float32(l))
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  Length
	Height Length
}

// NewSize creates a size from two lengths.
func NewSize(width, height Length) Size {
	return Size{Width: width, Height: height}
}

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// NewColor creates a color, clamping each component into [0, 1].
func NewColor(r, g, b float32) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

// RGBA returns the components with an opaque alpha, ready for a clear call.
func (c Color) RGBA() (r, g, b, a float32) {
	return c.R, c.G, c.B, 1
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
