package keycode

// Mods is the HID modifier byte: bit i corresponds to keycode LCtrl+i.
type Mods uint8

const (
	ModLCtrl Mods = 1 << iota
	ModLShift
	ModLAlt
	ModLGui
	ModRCtrl
	ModRShift
	ModRAlt
	ModRGui
)

// Has reports whether every bit of m2 is set in m.
func (m Mods) Has(m2 Mods) bool { return m&m2 == m2 }

// Keycodes expands m into modifier keycodes, lowest bit first.
func (m Mods) Keycodes() []Keycode {
	var out []Keycode
	for i := 0; i < 8; i++ {
		if m&(1<<i) != 0 {
			out = append(out, LCtrl+Keycode(i))
		}
	}
	return out
}

// ModOf returns the modifier bit for a modifier keycode, or 0.
func ModOf(kc Keycode) Mods {
	if !kc.IsModifier() {
		return 0
	}
	return 1 << (kc - LCtrl)
}

func (m Mods) String() string {
	if m == 0 {
		return "NONE"
	}
	var b []byte
	for _, kc := range m.Keycodes() {
		if len(b) > 0 {
			b = append(b, '|')
		}
		b = append(b, Name(kc)...)
	}
	return string(b)
}
