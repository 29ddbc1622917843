package id

import "testing"

func TestNewID24_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := NewID24()
		if len(got) != 24 {
			t.Fatalf("length = %d, want 24 (%q)", len(got), got)
		}
		if !Valid(got) {
			t.Fatalf("NewID24 produced invalid id %q", got)
		}
	}
}

func TestNewID24_Unique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		got := NewID24()
		if seen[got] {
			t.Fatalf("duplicate id %q", got)
		}
		seen[got] = true
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"5f1d7f3b9c8a4e2d1b0a9f8e", true},
		{"5F1D7F3B9C8A4E2D1B0A9F8E", false}, // uppercase
		{"5f1d7f3b9c8a4e2d1b0a9f8", false},  // 23 chars
		{"5f1d7f3b9c8a4e2d1b0a9f8ez", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Valid(c.in); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
