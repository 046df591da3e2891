// Package keymap holds layer tables of tagged key actions indexed by
// (layer, matrix row, matrix column).
package keymap

import (
	"strconv"

	"kyria-go/keycode"
	"kyria-go/layer"
)

// Kind tags the variant carried by an Action.
type Kind uint8

const (
	KindNone        Kind = iota // no action; stops layer fall-through
	KindTransparent             // defer to the next active layer below
	KindKey                     // plain key, optionally with modifiers held
	KindModTap                  // modifier when held, key when tapped
	KindLayerTap                // layer when held, key when tapped
	KindMomentary               // layer while held
	KindOneShotMod              // modifiers armed for the next key only
	KindMacro                   // user keycode handled by the keymap
)

var kindNames = [...]string{"NO", "TRNS", "KEY", "MT", "LT", "MO", "OSM", "MACRO"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "KIND(" + strconv.Itoa(int(k)) + ")"
}

// Action is one cell of a layer. Fields not used by Kind are zero.
type Action struct {
	Kind  Kind
	Code  keycode.Keycode // tapped/sent key, or the macro keycode
	Mods  keycode.Mods    // held with Code (KindKey), held (KindModTap), armed (KindOneShotMod)
	Layer layer.ID        // KindLayerTap, KindMomentary
}

// Constructors mirror the usual keymap shorthands.

var (
	No   = Action{Kind: KindNone}
	Trns = Action{Kind: KindTransparent}
)

func K(kc keycode.Keycode) Action { return Action{Kind: KindKey, Code: kc} }

// Mod sends kc with mods held, e.g. Mod(ModLCtrl, Space) for LCTL(KC_SPC).
func Mod(mods keycode.Mods, kc keycode.Keycode) Action {
	return Action{Kind: KindKey, Code: kc, Mods: mods}
}

func MT(mods keycode.Mods, kc keycode.Keycode) Action {
	return Action{Kind: KindModTap, Code: kc, Mods: mods}
}

func LT(l layer.ID, kc keycode.Keycode) Action {
	return Action{Kind: KindLayerTap, Code: kc, Layer: l}
}

func MO(l layer.ID) Action { return Action{Kind: KindMomentary, Layer: l} }

func OSM(mods keycode.Mods) Action { return Action{Kind: KindOneShotMod, Mods: mods} }

func Macro(kc keycode.Keycode) Action { return Action{Kind: KindMacro, Code: kc} }

// TapCode is the keycode a short press of a produces, or keycode.No.
func (a Action) TapCode() keycode.Keycode {
	switch a.Kind {
	case KindKey, KindModTap, KindLayerTap, KindMacro:
		return a.Code
	}
	return keycode.No
}

// HoldLayer reports the layer a activates while held.
func (a Action) HoldLayer() (layer.ID, bool) {
	switch a.Kind {
	case KindLayerTap, KindMomentary:
		return a.Layer, true
	}
	return 0, false
}

// String renders QMK-like notation: "A", "LCTL(SPC)", "LT(3,ESC)", "OSM(LCTL|LALT)".
func (a Action) String() string {
	switch a.Kind {
	case KindNone:
		return "XXXXXXX"
	case KindTransparent:
		return "_______"
	case KindKey:
		if a.Mods == 0 {
			return a.Code.String()
		}
		return a.Mods.String() + "(" + a.Code.String() + ")"
	case KindModTap:
		return "MT(" + a.Mods.String() + "," + a.Code.String() + ")"
	case KindLayerTap:
		return "LT(" + strconv.Itoa(int(a.Layer)) + "," + a.Code.String() + ")"
	case KindMomentary:
		return "MO(" + strconv.Itoa(int(a.Layer)) + ")"
	case KindOneShotMod:
		return "OSM(" + a.Mods.String() + ")"
	case KindMacro:
		return "MACRO(" + a.Code.String() + ")"
	}
	return a.Kind.String()
}
