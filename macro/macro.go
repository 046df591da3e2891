// Package macro replays fixed keystroke sequences through the host's
// synthetic key output.
package macro

import "kyria-go/keycode"

// Sender is the host's synthetic keystroke output. Calls are synchronous and
// assumed to succeed; the host owns the transport.
type Sender interface {
	RegisterCode(kc keycode.Keycode)
	UnregisterCode(kc keycode.Keycode)
	TapCode(kc keycode.Keycode)
}

// Op is one synthetic event kind.
type Op uint8

const (
	Down Op = iota
	Up
	Tap
)

func (o Op) String() string {
	switch o {
	case Down:
		return "down"
	case Up:
		return "up"
	case Tap:
		return "tap"
	}
	return "?"
}

// Step is one synthetic event.
type Step struct {
	Op   Op
	Code keycode.Keycode
}

func D(kc keycode.Keycode) Step { return Step{Op: Down, Code: kc} }
func U(kc keycode.Keycode) Step { return Step{Op: Up, Code: kc} }
func T(kc keycode.Keycode) Step { return Step{Op: Tap, Code: kc} }

// Sequence is an ordered list of steps.
type Sequence []Step

// Play emits every step in order.
func (s Sequence) Play(out Sender) {
	for _, st := range s {
		st.Emit(out)
	}
}

// Emit sends a single step.
func (st Step) Emit(out Sender) {
	switch st.Op {
	case Down:
		out.RegisterCode(st.Code)
	case Up:
		out.UnregisterCode(st.Code)
	case Tap:
		out.TapCode(st.Code)
	}
}

// String renders SS_DOWN/SS_UP/SS_TAP-like notation, e.g. "{+LSFT}{RIGHT}{-LSFT}".
func (s Sequence) String() string {
	var b []byte
	for _, st := range s {
		b = append(b, '{')
		switch st.Op {
		case Down:
			b = append(b, '+')
		case Up:
			b = append(b, '-')
		}
		b = append(b, st.Code.String()...)
		b = append(b, '}')
	}
	return string(b)
}

// Recorder is a Sender that keeps every step it receives.
type Recorder struct {
	Steps Sequence
}

func (r *Recorder) RegisterCode(kc keycode.Keycode)   { r.Steps = append(r.Steps, D(kc)) }
func (r *Recorder) UnregisterCode(kc keycode.Keycode) { r.Steps = append(r.Steps, U(kc)) }
func (r *Recorder) TapCode(kc keycode.Keycode)        { r.Steps = append(r.Steps, T(kc)) }

// Reset drops recorded steps.
func (r *Recorder) Reset() { r.Steps = nil }
