package row

import (
	"slices"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{"empty", "", []int{0}},
		{"single word", "Hello", []int{0, 5}},
		{"leading tab", "\tHello", []int{0, 1, 6}},
		{"leading tabs", "\t\tHello", []int{0, 1, 2, 7}},
		{"sentence", "The quick brown fox", []int{0, 4, 10, 16, 19}},
		{"interior tab not boundary", "a\tb", []int{0, 2, 3}},
		{"leading spaces", "  ab", []int{2, 4}},
		{"trailing space", "ab ", []int{0, 3}},
		{"only whitespace", " \t ", []int{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.raw, 4)
			if got := r.Words(); !slices.Equal(got, tt.want) {
				t.Errorf("Words() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextWordForth(t *testing.T) {
	r := New("The quick brown fox", 4)
	tests := []struct {
		from, want int
	}{
		{0, 4},
		{3, 4},
		{4, 10},
		{10, 16},
		{16, 19},
		{19, 19},
		{50, 19},
	}
	for _, tt := range tests {
		if got := r.NextWordForth(tt.from); got != tt.want {
			t.Errorf("NextWordForth(%d) = %d, want %d", tt.from, got, tt.want)
		}
	}
}

func TestNextWordBack(t *testing.T) {
	r := New("The quick brown fox", 4)
	tests := []struct {
		from, want int
	}{
		{19, 16},
		{16, 10},
		{12, 10},
		{10, 4},
		{4, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := r.NextWordBack(tt.from); got != tt.want {
			t.Errorf("NextWordBack(%d) = %d, want %d", tt.from, got, tt.want)
		}
	}
}

func TestWordJumpsThroughIndentation(t *testing.T) {
	r := New("\tHello", 4)
	if got := r.NextWordForth(0); got != 1 {
		t.Errorf("NextWordForth(0) = %d, want 1", got)
	}
	if got := r.NextWordBack(6); got != 1 {
		t.Errorf("NextWordBack(6) = %d, want 1", got)
	}
	if got := r.NextWordBack(1); got != 0 {
		t.Errorf("NextWordBack(1) = %d, want 0", got)
	}
}
