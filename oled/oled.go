// Package oled is the status-screen plumbing between a keymap's render hook
// and a monochrome page-addressed panel.
package oled

import (
	"kyria-go/keycode"
	"kyria-go/layer"
)

// Rotation of the panel, in 90° steps.
type Rotation uint8

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

func (r Rotation) String() string {
	switch r {
	case Rotation0:
		return "0"
	case Rotation90:
		return "90"
	case Rotation180:
		return "180"
	case Rotation270:
		return "270"
	}
	return "?"
}

// Display is the host's display-buffer write service.
type Display interface {
	// Write puts text at the cursor; invert draws it highlighted.
	Write(s string, invert bool)
	// WriteRaw copies a page-major bitmap into the buffer from offset 0.
	WriteRaw(b []byte)
}

// Status is the host state a render pass may show.
type Status struct {
	Master bool
	Layers layer.State
	LEDs   keycode.LEDs
}
