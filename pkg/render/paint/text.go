// Package paint holds colours and text styles shared by the drawing code.
// It does not depend on a graphics backend.
package paint

import "image/color"

// Align is the horizontal anchor of a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Shadow is a drop shadow drawn under text. The offset is in target pixels
// and is not affected by the current transform.
type Shadow struct {
	Color   color.Color
	OffsetX float64
	OffsetY float64
}

// TextStyle describes how text is rendered. Text is always vertically
// centred on its y coordinate.
type TextStyle struct {
	Size   float64
	Color  color.Color
	Align  Align
	Shadow *Shadow
}
