//go:build rp2040

package platform

import (
	"machine"
	"machine/usb/hid/keyboard"

	"kyria-go/encoder"
	"kyria-go/keycode"
	"kyria-go/oled"
	"kyria-go/types"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/encoders"
)

// Pro Micro footprint on RP2040 boards: the OLED header sits on I2C1.
const (
	pinSDA = machine.GPIO2
	pinSCL = machine.GPIO3
)

func Open(cfg types.KeyboardConfig, rot oled.Rotation) (*Board, error) {
	b := &Board{}

	if cfg.OLED.Enabled {
		if err := machine.I2C1.Configure(machine.I2CConfig{
			Frequency: 400 * machine.KHz,
			SDA:       pinSDA,
			SCL:       pinSCL,
		}); err != nil {
			return nil, err
		}
		b.Panel = oled.NewPanel(machine.I2C1, cfg.OLED.Address, int16(cfg.OLED.Width), int16(cfg.OLED.Height), rot)
	}

	if cfg.Encoders.Enabled {
		for _, p := range cfg.Encoders.Pins {
			enc := encoders.NewQuadratureViaInterrupt(machine.Pin(p.A), machine.Pin(p.B))
			if err := enc.Configure(encoders.QuadratureConfig{Precision: cfg.Encoders.Resolution}); err != nil {
				return nil, err
			}
			b.Encoders = append(b.Encoders, encoder.Positioner(enc))
		}
	}

	if cfg.Master {
		b.HID = &usbHID{kb: keyboard.Port()}
	}

	if cfg.Split.Enabled {
		u := uartx.UART0
		if err := u.Configure(uartx.UARTConfig{
			BaudRate: cfg.Split.Baud,
			TX:       machine.Pin(cfg.Split.TX),
			RX:       machine.Pin(cfg.Split.RX),
		}); err != nil {
			return nil, err
		}
		b.Split = u
	}
	return b, nil
}

// ---- USB HID ----

type hidKeyboard interface {
	Down(c keyboard.Keycode) error
	Up(c keyboard.Keycode) error
}

// usbHID adapts keycodes to the TinyGo USB keyboard.
type usbHID struct {
	kb hidKeyboard
}

func (h *usbHID) RegisterCode(kc keycode.Keycode) {
	if c, ok := toHID(kc); ok {
		_ = h.kb.Down(c)
	}
}

func (h *usbHID) UnregisterCode(kc keycode.Keycode) {
	if c, ok := toHID(kc); ok {
		_ = h.kb.Up(c)
	}
}

func (h *usbHID) TapCode(kc keycode.Keycode) {
	if c, ok := toHID(kc); ok {
		_ = h.kb.Down(c)
		_ = h.kb.Up(c)
	}
}

var mediaKeys = map[keycode.Keycode]keyboard.Keycode{
	keycode.Mute:      keyboard.KeyMediaMute,
	keycode.VolUp:     keyboard.KeyMediaVolumeInc,
	keycode.VolDown:   keyboard.KeyMediaVolumeDec,
	keycode.MediaNext: keyboard.KeyMediaNextTrack,
	keycode.MediaPrev: keyboard.KeyMediaPrevTrack,
	keycode.MediaStop: keyboard.KeyMediaStop,
	keycode.MediaPlay: keyboard.KeyMediaPlayPause,
}

var modKeys = [...]keyboard.Keycode{
	keyboard.KeyModifierCtrl,
	keyboard.KeyModifierShift,
	keyboard.KeyModifierAlt,
	keyboard.KeyModifierGUI,
	keyboard.KeyModifierRightCtrl,
	keyboard.KeyModifierRightShift,
	keyboard.KeyModifierRightAlt,
	keyboard.KeyModifierRightGUI,
}

// toHID maps a keycode to the TinyGo keyboard encoding. Lighting and user
// codes have no USB meaning.
func toHID(kc keycode.Keycode) (keyboard.Keycode, bool) {
	switch {
	case kc.IsModifier():
		return modKeys[kc-keycode.LCtrl], true
	case kc.IsMedia():
		c, ok := mediaKeys[kc]
		return c, ok
	case kc.IsBasic() && kc != keycode.No:
		return keyboard.Keycode(0xF000 | uint16(kc)), true
	}
	return 0, false
}
