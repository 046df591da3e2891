// Package layer models the host's layer-activity bitset and the tri-layer
// composition rule.
package layer

// ID indexes a layer; 0 is the default layer.
type ID uint8

// MaxLayers is the width of State.
const MaxLayers = 32

// State is the set of active layers, bit i for layer i.
type State uint32

// Of builds a State from layer IDs.
func Of(ids ...ID) State {
	var s State
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

func (s State) Has(id ID) bool {
	return id < MaxLayers && s&(1<<id) != 0
}

func (s State) With(id ID) State {
	if id >= MaxLayers {
		return s
	}
	return s | 1<<id
}

func (s State) Without(id ID) State {
	if id >= MaxLayers {
		return s
	}
	return s &^ (1 << id)
}

// Highest returns the topmost active layer; an empty state reports layer 0.
func (s State) Highest() ID {
	for i := MaxLayers - 1; i > 0; i-- {
		if s&(1<<uint(i)) != 0 {
			return ID(i)
		}
	}
	return 0
}

// TriLayer activates c when a and b are both active; any other state is
// returned unchanged.
func TriLayer(s State, a, b, c ID) State {
	if s.Has(a) && s.Has(b) {
		return s.With(c)
	}
	return s
}
