// Package platform opens the board peripherals a keyboard half needs.
package platform

import (
	"kyria-go/encoder"
	"kyria-go/macro"
	"kyria-go/services/keyboard"
	"kyria-go/split"
)

// Board is what Open found. Fields are nil when the matching config section
// is disabled.
type Board struct {
	Panel    keyboard.Flusher
	Encoders []encoder.Positioner
	HID      macro.Sender
	Split    split.Port
}
