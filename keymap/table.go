package keymap

import (
	"strconv"

	"kyria-go/errcode"
	"kyria-go/keycode"
	"kyria-go/layer"
)

// Table is an immutable stack of layers sharing one geometry.
type Table struct {
	geo    Geometry
	layers [][][]Action
}

func NewTable(g Geometry, layers ...[][]Action) *Table {
	return &Table{geo: g, layers: layers}
}

func (t *Table) Geometry() Geometry { return t.geo }
func (t *Table) Len() int           { return len(t.layers) }

// At returns the cell at (l, p) without fall-through.
func (t *Table) At(l layer.ID, p Pos) (Action, error) {
	if int(l) >= len(t.layers) {
		return No, errcode.UnknownLayer
	}
	if !t.geo.Contains(p) {
		return No, errcode.InvalidPosition
	}
	return t.layers[l][p.Row][p.Col], nil
}

// Resolve returns the action for p under state s: the highest active layer
// with a non-transparent cell wins and layer 0 is always consulted. Unknown
// positions resolve to No.
func (t *Table) Resolve(s layer.State, p Pos) Action {
	a, _ := t.ResolveFrom(s, p)
	return a
}

// ResolveFrom is Resolve that also reports the layer the action came from.
func (t *Table) ResolveFrom(s layer.State, p Pos) (Action, layer.ID) {
	if !t.geo.Contains(p) {
		return No, 0
	}
	for i := len(t.layers) - 1; i >= 0; i-- {
		if i > 0 && !s.Has(layer.ID(i)) {
			continue
		}
		a := t.layers[i][p.Row][p.Col]
		if a.Kind != KindTransparent {
			return a, layer.ID(i)
		}
	}
	return No, 0
}

// Validate checks the dimensions of every layer and the targets of layer
// and macro actions.
func (t *Table) Validate() error {
	if len(t.layers) == 0 || len(t.layers) > layer.MaxLayers {
		return &errcode.E{C: errcode.InvalidLayout, Op: "keymap.Validate", Msg: "layer count"}
	}
	for l, rows := range t.layers {
		if len(rows) != int(t.geo.Rows) {
			return invalid(l, "row count")
		}
		for _, row := range rows {
			if len(row) != int(t.geo.Cols) {
				return invalid(l, "column count")
			}
			for _, a := range row {
				if hl, ok := a.HoldLayer(); ok && int(hl) >= len(t.layers) {
					return &errcode.E{C: errcode.UnknownLayer, Op: "keymap.Validate", Msg: "layer " + strconv.Itoa(l) + ": " + a.String()}
				}
				if a.Kind == KindMacro && !a.Code.IsUser() {
					return invalid(l, "macro below SafeRange: "+a.String())
				}
				if a.Kind == KindModTap && a.Mods == 0 || a.Kind == KindOneShotMod && a.Mods == 0 {
					return invalid(l, "modifier action without mods")
				}
			}
		}
	}
	return nil
}

func invalid(l int, msg string) error {
	return &errcode.E{C: errcode.InvalidLayout, Op: "keymap.Validate", Msg: "layer " + strconv.Itoa(l) + ": " + msg}
}

// Keycodes lists every non-No tap code of layer l in matrix order, for
// diagnostics and tests.
func (t *Table) Keycodes(l layer.ID) []keycode.Keycode {
	if int(l) >= len(t.layers) {
		return nil
	}
	var out []keycode.Keycode
	for _, row := range t.layers[l] {
		for _, a := range row {
			if kc := a.TapCode(); kc != keycode.No {
				out = append(out, kc)
			}
		}
	}
	return out
}
