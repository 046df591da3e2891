package keymap

import (
	"strconv"

	"kyria-go/errcode"
)

// Geometry is the electrical matrix size.
type Geometry struct {
	Rows uint8
	Cols uint8
}

func (g Geometry) Contains(p Pos) bool { return p.Row < g.Rows && p.Col < g.Cols }

// Layout maps physical keys, listed in visual order, onto matrix positions.
type Layout struct {
	Geometry Geometry
	Keys     []Pos
}

// Build places keys (visual order) into a matrix; cells without a key hold No.
func (l *Layout) Build(keys ...Action) ([][]Action, error) {
	if len(keys) != len(l.Keys) {
		return nil, &errcode.E{
			C:   errcode.InvalidLayout,
			Op:  "keymap.Build",
			Msg: "got " + strconv.Itoa(len(keys)) + " keys, layout has " + strconv.Itoa(len(l.Keys)),
		}
	}
	m := make([][]Action, l.Geometry.Rows)
	for r := range m {
		m[r] = make([]Action, l.Geometry.Cols)
	}
	for i, p := range l.Keys {
		if !l.Geometry.Contains(p) {
			return nil, &errcode.E{C: errcode.InvalidPosition, Op: "keymap.Build", Msg: "key " + strconv.Itoa(i)}
		}
		m[p.Row][p.Col] = keys[i]
	}
	return m, nil
}

// MustBuild is Build for compile-time tables.
func (l *Layout) MustBuild(keys ...Action) [][]Action {
	m, err := l.Build(keys...)
	if err != nil {
		panic(err)
	}
	return m
}
