package strx

import "testing"

func TestCoalesce(t *testing.T) {
	if Coalesce("", "left") != "left" || Coalesce("right", "left") != "right" {
		t.Fatal("coalesce")
	}
}

func TestPadRight(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcdef", 4, "abcd"},
		{"", 2, "  "},
	}
	for _, c := range cases {
		if got := PadRight(c.in, c.n); got != c.want {
			t.Errorf("PadRight(%q,%d) = %q, want %q", c.in, c.n, got, c.want)
		}
	}
}
