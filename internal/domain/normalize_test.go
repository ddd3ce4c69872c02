package domain

import (
	"reflect"
	"testing"
)

func TestLowerWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii", input: "Cat", want: "cat"},
		{name: "already lower", input: "dog", want: "dog"},
		{name: "diacritics preserved", input: "Café", want: "café"},
		{name: "greek", input: "\u0391\u0392\u0393", want: "\u03B1\u03B2\u03B3"},
		{name: "empty", input: "", want: ""},
		{name: "punctuation untouched", input: "Don't", want: "don't"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LowerWord(tt.input); got != tt.want {
				t.Errorf("LowerWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUpperWord(t *testing.T) {
	t.Parallel()

	if got := UpperWord("ch"); got != "CH" {
		t.Errorf("UpperWord(ch) = %q", got)
	}
	if got := UpperWord(""); got != "" {
		t.Errorf("UpperWord(\"\") = %q", got)
	}
}

func TestNormalizeNFC(t *testing.T) {
	t.Parallel()

	decomposed := "e\u0301"
	if got := NormalizeNFC(decomposed); got != "é" {
		t.Errorf("NormalizeNFC(%q) = %q, want precomposed e-acute", decomposed, got)
	}
	if got := NormalizeNFC("plain"); got != "plain" {
		t.Errorf("NormalizeNFC(plain) = %q", got)
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{input: "a c m r t", want: []string{"a", "c", "m", "r", "t"}},
		{input: "  canine   feline ", want: []string{"canine", "feline"}},
		{input: "", want: []string{}},
	}
	for _, tt := range tests {
		got := SplitList(tt.input)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	if got := NormalizeName("  Grade  One  "); got != "Grade One" {
		t.Errorf("NormalizeName = %q", got)
	}
}
