package keycode

import "strconv"

var names = map[Keycode]string{
	No: "NO",
	A:  "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G", H: "H", I: "I",
	J: "J", K: "K", L: "L", M: "M", N: "N", O: "O", P: "P", Q: "Q", R: "R",
	S: "S", T: "T", U: "U", V: "V", W: "W", X: "X", Y: "Y", Z: "Z",
	N1: "1", N2: "2", N3: "3", N4: "4", N5: "5", N6: "6", N7: "7", N8: "8", N9: "9", N0: "0",
	Enter: "ENT", Escape: "ESC", Backspace: "BSPC", Tab: "TAB", Space: "SPC",
	Minus: "MINS", Equal: "EQL", LeftBracket: "LBRC", RightBracket: "RBRC",
	Backslash: "BSLS", NonUSHash: "NUHS", Semicolon: "SCLN", Quote: "QUOT",
	Grave: "GRV", Comma: "COMM", Dot: "DOT", Slash: "SLSH", CapsLock: "CAPS",
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	PrintScreen: "PSCR", ScrollLock: "SCRL", Pause: "PAUS", Insert: "INS",
	Home: "HOME", PageUp: "PGUP", Delete: "DEL", End: "END", PageDown: "PGDN",
	Right: "RIGHT", Left: "LEFT", Down: "DOWN", Up: "UP", NumLock: "NUM",
	NonUSBackslash: "NUBS",
	Mute: "MUTE", VolUp: "VOLU", VolDown: "VOLD", MediaNext: "MNXT",
	MediaPrev: "MPRV", MediaStop: "MSTP", MediaPlay: "MPLY",
	LCtrl: "LCTL", LShift: "LSFT", LAlt: "LALT", LGui: "LGUI",
	RCtrl: "RCTL", RShift: "RSFT", RAlt: "RALT", RGui: "RGUI",
	RGBToggle: "RGB_TOG", RGBModeForward: "RGB_MOD", RGBModeReverse: "RGB_RMOD",
	RGBHueUp: "RGB_HUI", RGBHueDown: "RGB_HUD", RGBSatUp: "RGB_SAI",
	RGBSatDown: "RGB_SAD", RGBValUp: "RGB_VAI", RGBValDown: "RGB_VAD",
}

var byName map[string]Keycode

func init() {
	byName = make(map[string]Keycode, len(names))
	for kc, n := range names {
		byName[n] = kc
	}
}

// Name returns a short QMK-style name; unnamed codes render as hex, user
// codes as USER+n.
func Name(kc Keycode) string {
	if n, ok := names[kc]; ok {
		return n
	}
	if kc.IsUser() {
		return "USER+" + strconv.Itoa(int(kc-SafeRange))
	}
	return "0x" + strconv.FormatUint(uint64(kc), 16)
}

func (kc Keycode) String() string { return Name(kc) }

// Parse is the inverse of Name for named codes. A "KC_" prefix is accepted.
func Parse(s string) (Keycode, bool) {
	if len(s) > 3 && s[:3] == "KC_" {
		s = s[3:]
	}
	kc, ok := byName[s]
	return kc, ok
}
