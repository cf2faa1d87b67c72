package models

import "testing"

func TestParseScorePair(t *testing.T) {
	tests := []struct {
		input string
		home  int
		away  int
		ok    bool
	}{
		{"3-1", 3, 1, true},
		{"3:1", 3, 1, true},
		{" 3 - 1 ", 3, 1, true},
		{"11-9", 11, 9, true},
		{"2-2", 2, 2, true},
		{"", 0, 0, false},
		{"3-1 ret.", 0, 0, false},
		{"w/o", 0, 0, false},
		{"3", 0, 0, false},
		{"-1", 0, 0, false},
	}

	for _, tt := range tests {
		home, away, ok := ParseScorePair(tt.input)
		if home != tt.home || away != tt.away || ok != tt.ok {
			t.Errorf("ParseScorePair(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.input, home, away, ok, tt.home, tt.away, tt.ok)
		}
	}
}

func TestFlipScore(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"3-1", "1-3"},
		{"3:1", "1:3"},
		{"11-9", "9-11"},
		{"", ""},
		{"w/o", "w/o"},
		{"3-1 ret.", "3-1 ret."},
	}

	for _, tt := range tests {
		if got := FlipScore(tt.input); got != tt.expected {
			t.Errorf("FlipScore(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFlipScore_Involutive(t *testing.T) {
	for _, s := range []string{"3-1", "3:1", "0-4", "11-9", "w/o", "abc"} {
		if got := FlipScore(FlipScore(s)); got != s {
			t.Errorf("FlipScore(FlipScore(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestFlipGameScores(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"11-9,9-11,11-7", "9-11,11-9,7-11"},
		{"11-9, 9-11", "9-11,11-9"},
		{"", ""},
		{"11-9,w/o", "9-11,w/o"},
	}

	for _, tt := range tests {
		if got := FlipGameScores(tt.input); got != tt.expected {
			t.Errorf("FlipGameScores(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
