package keyboard

import (
	"kyria-go/bus"
	"kyria-go/keycode"
	"kyria-go/macro"
	"kyria-go/types"
)

// hidOut publishes every step on kbd/hid/out and forwards it to the host
// HID sender when there is one.
type hidOut struct {
	conn *bus.Connection
	next macro.Sender
}

func (h *hidOut) emit(op macro.Op, kc keycode.Keycode) {
	h.conn.Publish(h.conn.NewMessage(TopicHIDOut, types.HIDStep{Op: op.String(), Code: uint16(kc)}, false))
}

func (h *hidOut) RegisterCode(kc keycode.Keycode) {
	h.emit(macro.Down, kc)
	if h.next != nil {
		h.next.RegisterCode(kc)
	}
}

func (h *hidOut) UnregisterCode(kc keycode.Keycode) {
	h.emit(macro.Up, kc)
	if h.next != nil {
		h.next.UnregisterCode(kc)
	}
}

func (h *hidOut) TapCode(kc keycode.Keycode) {
	h.emit(macro.Tap, kc)
	if h.next != nil {
		h.next.TapCode(kc)
	}
}
