package macro

import (
	"testing"

	"kyria-go/keycode"
)

func TestPlay_EmitsInOrder(t *testing.T) {
	seq := Sequence{D(keycode.LCtrl), T(keycode.C), U(keycode.LCtrl)}
	var rec Recorder
	seq.Play(&rec)

	if len(rec.Steps) != len(seq) {
		t.Fatalf("recorded %d steps, want %d", len(rec.Steps), len(seq))
	}
	for i := range seq {
		if rec.Steps[i] != seq[i] {
			t.Fatalf("step %d = %+v, want %+v", i, rec.Steps[i], seq[i])
		}
	}
}

func TestSequenceString(t *testing.T) {
	seq := Sequence{D(keycode.LShift), T(keycode.Right), U(keycode.LShift)}
	if got, want := seq.String(), "{+LSFT}{RIGHT}{-LSFT}"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestRecorderReset(t *testing.T) {
	var rec Recorder
	rec.TapCode(keycode.A)
	rec.Reset()
	if len(rec.Steps) != 0 {
		t.Fatalf("steps after reset = %v", rec.Steps)
	}
}

func TestRecorderReset_KeepsEarlierSteps(t *testing.T) {
	var rec Recorder
	rec.TapCode(keycode.A)
	held := rec.Steps
	rec.Reset()
	rec.TapCode(keycode.B)
	if held[0] != T(keycode.A) {
		t.Fatalf("held steps changed to %v", held)
	}
	if got := rec.Steps.String(); got != "{B}" {
		t.Fatalf("steps = %q, want {B}", got)
	}
}
