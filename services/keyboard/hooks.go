package keyboard

import (
	"kyria-go/encoder"
	"kyria-go/keycode"
	"kyria-go/keymap"
	"kyria-go/kyria"
	"kyria-go/layer"
	"kyria-go/macro"
	"kyria-go/oled"
)

// Keymap is what every keymap provides.
type Keymap interface {
	Table() *keymap.Table
	Features() kyria.Features
	LayerStateSet(s layer.State) layer.State
	ProcessRecord(kc keycode.Keycode, rec keymap.Record, out macro.Sender) bool
}

// OLEDUser is implemented by keymaps that draw a status screen.
type OLEDUser interface {
	OLEDInit(r oled.Rotation) oled.Rotation
	OLEDTask(d oled.Display, st oled.Status)
}

// EncoderUser is implemented by keymaps that bind rotary encoders.
type EncoderUser interface {
	EncoderUpdate(index uint8, clockwise bool, out encoder.Tapper) bool
}

// Flusher pushes a console to a physical panel.
type Flusher interface {
	Flush(c *oled.Console) error
}
