package kyria

import (
	"kyria-go/encoder"
	"kyria-go/keycode"
	"kyria-go/keymap"
	"kyria-go/layer"
	"kyria-go/macro"
	"kyria-go/oled"
)

// Features selects the optional components the host should drive.
type Features struct {
	OLED    bool
	Encoder bool
}

// Keymap bundles the layer table with the user callbacks.
type Keymap struct {
	features Features
	table    *keymap.Table
}

func New(f Features) *Keymap {
	return &Keymap{features: f, table: Table()}
}

func (k *Keymap) Features() Features   { return k.features }
func (k *Keymap) Table() *keymap.Table { return k.table }

// LayerStateSet turns Adjust on whenever Lower and Raise are both active.
func (k *Keymap) LayerStateSet(s layer.State) layer.State {
	return layer.TriLayer(s, Lower, Raise, Adjust)
}

var macros = map[keycode.Keycode]macro.Sequence{
	FwdDelWord: deleteWord(keycode.Right),
	BckDelWord: deleteWord(keycode.Left),
}

// Shift+Alt+arrow selects a word, backspace removes it.
func deleteWord(dir keycode.Keycode) macro.Sequence {
	return macro.Sequence{
		macro.D(keycode.LShift),
		macro.D(keycode.LAlt),
		macro.T(dir),
		macro.U(keycode.LShift),
		macro.U(keycode.LAlt),
		macro.T(keycode.Backspace),
	}
}

// MacroFor returns the sequence a custom keycode plays on press.
func MacroFor(kc keycode.Keycode) (macro.Sequence, bool) {
	seq, ok := macros[kc]
	return seq, ok
}

// ProcessRecord plays the word-delete macros on press and reports false so
// the host skips default handling. Everything else is left to the host.
func (k *Keymap) ProcessRecord(kc keycode.Keycode, rec keymap.Record, out macro.Sender) bool {
	if !rec.Pressed {
		return true
	}
	seq, ok := macros[kc]
	if !ok {
		return true
	}
	seq.Play(out)
	return false
}

// OLEDInit flips the panel; both halves are mounted upside down.
func (k *Keymap) OLEDInit(oled.Rotation) oled.Rotation {
	return oled.Rotation180
}

// OLEDTask draws the status screen on the primary half and the Kyria logo on
// the secondary.
func (k *Keymap) OLEDTask(d oled.Display, st oled.Status) {
	if !st.Master {
		d.WriteRaw(kyriaLogo[:])
		return
	}
	d.Write(qmkLogo, false)
	d.Write("Kyria rev1.0\n\n", false)

	d.Write("Layer: ", false)
	d.Write(LayerName(st.Layers.Highest())+"\n", false)

	d.Write(lockLabel(st.LEDs, keycode.LEDNumLock, "NUMLCK "), false)
	d.Write(lockLabel(st.LEDs, keycode.LEDCapsLock, "CAPLCK "), false)
	d.Write(lockLabel(st.LEDs, keycode.LEDScrollLock, "SCRLCK "), false)
}

func lockLabel(leds, bit keycode.LEDs, label string) string {
	if leds.IsOn(bit) {
		return label
	}
	return "       "
}

// EncoderUpdate maps the left knob to volume and the right knob to paging.
func (k *Keymap) EncoderUpdate(index uint8, clockwise bool, out encoder.Tapper) bool {
	switch index {
	case 0:
		if clockwise {
			out.TapCode(keycode.VolUp)
		} else {
			out.TapCode(keycode.VolDown)
		}
	case 1:
		if clockwise {
			out.TapCode(keycode.PageDown)
		} else {
			out.TapCode(keycode.PageUp)
		}
	}
	return true
}
