// Package kyria is the "knothc" keymap for the splitkb Kyria rev1: five
// layers, the lower+raise tri-layer, two word-delete macros, the OLED status
// screen and the encoder bindings.
package kyria

import (
	"kyria-go/keycode"
	"kyria-go/keymap"
	"kyria-go/layer"
)

// Layers, in stacking order.
const (
	Base   layer.ID = iota // QWERTY
	Lower                  // symbols
	Nav                    // navigation and text macros
	Raise                  // numbers and media
	Adjust                 // function keys and lighting
)

// LayerName is the label shown on the status screen.
func LayerName(id layer.ID) string {
	switch id {
	case Base:
		return "Default"
	case Lower:
		return "LOWER"
	case Nav:
		return "knothc"
	case Raise:
		return "UPPER"
	case Adjust:
		return "Adjust"
	}
	return "Undefined"
}

// Custom keycodes.
const (
	FwdDelWord = keycode.SafeRange + iota
	BckDelWord
)

// Geometry is the electrical matrix: rows 0-3 left half, rows 4-7 right half.
var Geometry = keymap.Geometry{Rows: 8, Cols: 8}

// Layout lists the 50 keys in visual order (left to right, top to bottom,
// both halves) and where each sits in the matrix. The left half is wired
// mirrored.
var Layout = keymap.Layout{Geometry: Geometry, Keys: layoutKeys()}

func layoutKeys() []keymap.Pos {
	keys := make([]keymap.Pos, 0, 50)
	mirror := func(row uint8, n int, first uint8) {
		for i := 0; i < n; i++ {
			keys = append(keys, keymap.Pos{Row: row, Col: first - uint8(i)})
		}
	}
	straight := func(row uint8, n int, first uint8) {
		for i := 0; i < n; i++ {
			keys = append(keys, keymap.Pos{Row: row, Col: first + uint8(i)})
		}
	}
	mirror(0, 6, 7)
	straight(4, 6, 2)
	mirror(1, 6, 7)
	straight(5, 6, 2)
	mirror(2, 8, 7)
	straight(6, 8, 0)
	mirror(3, 5, 4)
	straight(7, 5, 0)
	return keys
}

// Shorthands for the tables below.
var (
	_______ = keymap.Trns
	k       = keymap.K
)

func lcmd(kc keycode.Keycode) keymap.Action { return keymap.Mod(keycode.ModLGui, kc) }
func lalt(kc keycode.Keycode) keymap.Action { return keymap.Mod(keycode.ModLAlt, kc) }

// Home-row mods.
var (
	hrmA    = keymap.MT(keycode.ModLShift, keycode.A)
	hrmS    = keymap.MT(keycode.ModLCtrl, keycode.S)
	hrmD    = keymap.MT(keycode.ModLAlt, keycode.D)
	hrmF    = keymap.MT(keycode.ModLGui, keycode.F)
	hrmJ    = keymap.MT(keycode.ModRGui, keycode.J)
	hrmK    = keymap.MT(keycode.ModLAlt, keycode.K)
	hrmL    = keymap.MT(keycode.ModLCtrl, keycode.L)
	hrmScln = keymap.MT(keycode.ModLShift, keycode.Semicolon)

	ctlAlt = keymap.OSM(keycode.ModLCtrl | keycode.ModLAlt)
)

// Layers builds the five layer matrices, indexed by layer ID.
func Layers() [][][]keymap.Action {
	out := make([][][]keymap.Action, Adjust+1)

	out[Base] = Layout.MustBuild(
		keymap.LT(Raise, keycode.Escape), k(keycode.Q), k(keycode.W), k(keycode.E), k(keycode.R), k(keycode.T),
		k(keycode.Y), k(keycode.U), k(keycode.I), k(keycode.O), k(keycode.P), k(keycode.Backspace),

		keymap.LT(Nav, keycode.Tab), hrmA, hrmS, hrmD, hrmF, k(keycode.G),
		k(keycode.H), hrmJ, hrmK, hrmL, hrmScln, keymap.ESQuot,

		k(keycode.LShift), k(keycode.Z), k(keycode.X), k(keycode.C), k(keycode.V), k(keycode.B),
		keymap.Mod(keycode.ModLCtrl, keycode.Space), ctlAlt,
		k(keycode.LShift), ctlAlt,
		k(keycode.N), k(keycode.M), k(keycode.Comma), k(keycode.Dot), k(keycode.Slash), k(keycode.RShift),

		k(keycode.LCtrl), k(keycode.LAlt), k(keycode.LGui), keymap.LT(Lower, keycode.Backspace), k(keycode.Enter),
		keymap.LT(Lower, keycode.Enter), keymap.LT(Raise, keycode.Space), keymap.MO(Nav), k(keycode.RGui), k(keycode.RAlt),
	)

	out[Lower] = Layout.MustBuild(
		_______, keymap.ESAt, _______, _______, keymap.ESEql, keymap.ESPlus,
		keymap.ESPipe, keymap.ESLcbr, keymap.ESRcbr, keymap.ESEql, k(keycode.LeftBracket), k(keycode.Delete),

		_______, keymap.ESExlm, keymap.ESDquo, keymap.ESHash, keymap.ESDlr, keymap.ESPerc,
		keymap.ESAmpr, keymap.ESLprn, keymap.ESRprn, keymap.ESSlsh, keymap.ESQues, k(keycode.Quote),

		_______, k(keycode.Grave), keymap.Mod(keycode.ModLShift, keycode.Grave), _______, keymap.ESAstr, keymap.ESMins, _______, _______,
		_______, _______, keymap.ESNot, keymap.ESLbrc, keymap.ESRbrc, _______, keymap.ESMins, _______,

		_______, _______, _______, _______, _______,
		_______, _______, _______, _______, _______,
	)

	out[Nav] = Layout.MustBuild(
		_______, _______, _______, keymap.Macro(BckDelWord), keymap.Macro(FwdDelWord), _______,
		_______, lcmd(keycode.Left), k(keycode.Up), lcmd(keycode.Right), k(keycode.Home), k(keycode.Delete),

		_______, k(keycode.LShift), k(keycode.LShift), lalt(keycode.Left), lalt(keycode.Right), _______,
		_______, k(keycode.Left), k(keycode.Down), k(keycode.Right), k(keycode.End), _______,

		_______, _______, lcmd(keycode.X), lcmd(keycode.C), lcmd(keycode.V), _______, _______, _______,
		_______, _______, _______, _______, _______, _______, _______, _______,

		_______, _______, _______, _______, _______,
		_______, _______, _______, _______, _______,
	)

	out[Raise] = Layout.MustBuild(
		_______, _______, k(keycode.MediaPrev), k(keycode.MediaPlay), k(keycode.MediaNext), _______,
		_______, k(keycode.VolDown), k(keycode.VolUp), k(keycode.Mute), _______, _______,

		_______, k(keycode.N1), k(keycode.N2), k(keycode.N3), k(keycode.N4), k(keycode.N5),
		k(keycode.N6), k(keycode.N7), k(keycode.N8), k(keycode.N9), k(keycode.N0), _______,

		_______, _______, _______, _______, _______, _______, _______, _______,
		_______, _______, _______, keymap.Mod(keycode.ModRCtrl, keycode.Space), _______, _______, _______, _______,

		_______, _______, _______, _______, _______,
		_______, _______, _______, _______, _______,
	)

	out[Adjust] = Layout.MustBuild(
		_______, k(keycode.F1), k(keycode.F2), k(keycode.F3), k(keycode.F4), k(keycode.F5),
		k(keycode.F6), k(keycode.F7), k(keycode.F8), k(keycode.F9), k(keycode.F10), _______,

		_______, k(keycode.RGBToggle), k(keycode.RGBSatUp), k(keycode.RGBHueUp), k(keycode.RGBValUp), k(keycode.RGBModeForward),
		_______, _______, _______, k(keycode.F11), k(keycode.F12), _______,

		_______, _______, k(keycode.RGBSatDown), k(keycode.RGBHueDown), k(keycode.RGBValDown), k(keycode.RGBModeReverse), _______, _______,
		_______, _______, _______, _______, _______, _______, _______, _______,

		_______, _______, _______, _______, _______,
		_______, _______, _______, _______, _______,
	)
	return out
}

// Table is the validated layer table. It panics if the layers are malformed.
func Table() *keymap.Table {
	t := keymap.NewTable(Geometry, Layers()...)
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}
