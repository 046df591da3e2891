package layer

import (
	"math/rand"
	"testing"
)

const (
	lower  ID = 1
	raise  ID = 3
	adjust ID = 4
)

func TestTriLayer_Table(t *testing.T) {
	cases := []struct {
		name string
		in   State
		want State
	}{
		{"empty", 0, 0},
		{"lower only", Of(lower), Of(lower)},
		{"raise only", Of(raise), Of(raise)},
		{"lower+raise", Of(lower, raise), Of(lower, raise, adjust)},
		{"lower+raise+base", Of(0, lower, raise), Of(0, lower, raise, adjust)},
		{"already adjusted", Of(lower, raise, adjust), Of(lower, raise, adjust)},
		{"adjust alone kept", Of(adjust), Of(adjust)},
		{"raise+adjust kept", Of(raise, adjust), Of(raise, adjust)},
	}
	for _, c := range cases {
		if got := TriLayer(c.in, lower, raise, adjust); got != c.want {
			t.Fatalf("%s: TriLayer(%032b) = %032b, want %032b", c.name, c.in, got, c.want)
		}
	}
}

func TestTriLayer_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		in := State(r.Uint32())
		once := TriLayer(in, lower, raise, adjust)
		if twice := TriLayer(once, lower, raise, adjust); twice != once {
			t.Fatalf("not idempotent for %032b", in)
		}
		if in.Has(lower) && in.Has(raise) {
			if !once.Has(adjust) {
				t.Fatalf("adjust missing for %032b", in)
			}
			if once.Without(adjust) != in.Without(adjust) {
				t.Fatalf("other bits changed for %032b", in)
			}
		} else if once != in {
			t.Fatalf("changed %032b -> %032b", in, once)
		}
	}
}

func TestHighest(t *testing.T) {
	if got := State(0).Highest(); got != 0 {
		t.Fatalf("Highest(empty) = %d", got)
	}
	if got := Of(0, lower).Highest(); got != lower {
		t.Fatalf("Highest = %d, want %d", got, lower)
	}
	if got := Of(lower, raise, adjust).Highest(); got != adjust {
		t.Fatalf("Highest = %d, want %d", got, adjust)
	}
	if got := Of(31).Highest(); got != 31 {
		t.Fatalf("Highest = %d, want 31", got)
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	s := Of(lower)
	if s.With(40) != s || s.Without(40) != s || s.Has(40) {
		t.Fatal("IDs >= MaxLayers must be ignored")
	}
}
