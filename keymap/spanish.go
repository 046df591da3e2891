package keymap

import "kyria-go/keycode"

// Spanish (ISO-ES) symbols as the host OS lays them out: the key position
// plus the modifiers that select the symbol. AltGr is right alt.
var (
	ESQuot = K(keycode.Minus)
	ESMins = K(keycode.Slash)
	ESPlus = K(keycode.RightBracket)

	ESExlm = Mod(keycode.ModLShift, keycode.N1)
	ESDquo = Mod(keycode.ModLShift, keycode.N2)
	ESDlr  = Mod(keycode.ModLShift, keycode.N4)
	ESPerc = Mod(keycode.ModLShift, keycode.N5)
	ESAmpr = Mod(keycode.ModLShift, keycode.N6)
	ESSlsh = Mod(keycode.ModLShift, keycode.N7)
	ESLprn = Mod(keycode.ModLShift, keycode.N8)
	ESRprn = Mod(keycode.ModLShift, keycode.N9)
	ESEql  = Mod(keycode.ModLShift, keycode.N0)
	ESQues = Mod(keycode.ModLShift, keycode.Minus)
	ESAstr = Mod(keycode.ModLShift, keycode.RightBracket)

	ESPipe = Mod(keycode.ModRAlt, keycode.N1)
	ESAt   = Mod(keycode.ModRAlt, keycode.N2)
	ESHash = Mod(keycode.ModRAlt, keycode.N3)
	ESNot  = Mod(keycode.ModRAlt, keycode.N6)
	ESLbrc = Mod(keycode.ModRAlt, keycode.LeftBracket)
	ESRbrc = Mod(keycode.ModRAlt, keycode.RightBracket)
	ESLcbr = Mod(keycode.ModRAlt, keycode.Quote)
	ESRcbr = Mod(keycode.ModRAlt, keycode.NonUSHash)
)
