// Package keycode names the key actions a keymap can assign: HID keyboard-page
// usages, consumer media keys, modifiers, lighting controls and user codes.
package keycode

// Keycode is an opaque 16-bit key identifier.
type Keycode uint16

// Ranges.
const (
	BasicMax  Keycode = 0x00FF
	Lighting  Keycode = 0x7800 // start of lighting controls
	SafeRange Keycode = 0x7E00 // first code free for user keycodes
)

// Basic HID keyboard page (usage page 0x07).
const (
	No Keycode = 0x00

	A Keycode = 0x04 + iota - 1
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	N1
	N2
	N3
	N4
	N5
	N6
	N7
	N8
	N9
	N0
	Enter
	Escape
	Backspace
	Tab
	Space
	Minus
	Equal
	LeftBracket
	RightBracket
	Backslash
	NonUSHash
	Semicolon
	Quote
	Grave
	Comma
	Dot
	Slash
	CapsLock
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	PrintScreen
	ScrollLock
	Pause
	Insert
	Home
	PageUp
	Delete
	End
	PageDown
	Right
	Left
	Down
	Up
	NumLock
)

// Non-US backslash sits on the ISO key left of Z.
const NonUSBackslash Keycode = 0x64

// Media keys, in the consumer range QMK reserves inside the basic page.
const (
	Mute      Keycode = 0xA8
	VolUp     Keycode = 0xA9
	VolDown   Keycode = 0xAA
	MediaNext Keycode = 0xAB
	MediaPrev Keycode = 0xAC
	MediaStop Keycode = 0xAD
	MediaPlay Keycode = 0xAE
)

// Modifier keys.
const (
	LCtrl  Keycode = 0xE0
	LShift Keycode = 0xE1
	LAlt   Keycode = 0xE2
	LGui   Keycode = 0xE3
	RCtrl  Keycode = 0xE4
	RShift Keycode = 0xE5
	RAlt   Keycode = 0xE6
	RGui   Keycode = 0xE7
)

// Lighting controls.
const (
	RGBToggle Keycode = Lighting + iota
	RGBModeForward
	RGBModeReverse
	RGBHueUp
	RGBHueDown
	RGBSatUp
	RGBSatDown
	RGBValUp
	RGBValDown
)

// IsBasic reports whether kc is a plain HID keyboard-page usage.
func (kc Keycode) IsBasic() bool { return kc <= BasicMax && !kc.IsMedia() && !kc.IsModifier() }

func (kc Keycode) IsMedia() bool    { return kc >= Mute && kc <= MediaPlay }
func (kc Keycode) IsModifier() bool { return kc >= LCtrl && kc <= RGui }
func (kc Keycode) IsLighting() bool { return kc >= Lighting && kc < SafeRange }
func (kc Keycode) IsUser() bool     { return kc >= SafeRange }
