// Package encoder turns rotary encoder positions into detent callbacks.
package encoder

import "kyria-go/keycode"

// Tapper is the host's single-keycode tap service.
type Tapper interface {
	TapCode(kc keycode.Keycode)
}

// Positioner reports an absolute encoder count, such as a quadrature decoder.
type Positioner interface {
	Position() int
}

// Tracker converts absolute counts into signed detent steps.
type Tracker struct {
	last       int
	resolution int
	acc        int
}

// NewTracker starts at pos; resolution is counts per detent (min 1).
func NewTracker(pos, resolution int) *Tracker {
	if resolution < 1 {
		resolution = 1
	}
	return &Tracker{last: pos, resolution: resolution}
}

// Update returns the whole detents moved since the last call; positive is
// clockwise. Partial counts carry over.
func (t *Tracker) Update(pos int) int {
	t.acc += pos - t.last
	t.last = pos
	steps := t.acc / t.resolution
	t.acc -= steps * t.resolution
	return steps
}

// TurnFunc is called once per detent.
type TurnFunc func(index uint8, clockwise bool)

// Poller samples several encoders and reports every detent.
type Poller struct {
	srcs     []Positioner
	trackers []*Tracker
	fn       TurnFunc
}

func NewPoller(fn TurnFunc, resolution int, srcs ...Positioner) *Poller {
	p := &Poller{srcs: srcs, fn: fn}
	for _, s := range srcs {
		p.trackers = append(p.trackers, NewTracker(s.Position(), resolution))
	}
	return p
}

// Poll samples every source once and returns the number of detents reported.
func (p *Poller) Poll() int {
	n := 0
	for i, s := range p.srcs {
		steps := p.trackers[i].Update(s.Position())
		cw := steps > 0
		if steps < 0 {
			steps = -steps
		}
		for ; steps > 0; steps-- {
			p.fn(uint8(i), cw)
			n++
		}
	}
	return n
}
