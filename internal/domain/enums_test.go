package domain

import "testing"

func TestSortType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sort SortType
		want bool
	}{
		{SortAlphabetic, true},
		{SortByLength, true},
		{SortByFrequency, true},
		{SortType("bySize"), false},
		{SortType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			t.Parallel()
			if got := tt.sort.IsValid(); got != tt.want {
				t.Errorf("SortType(%q).IsValid() = %v, want %v", tt.sort, got, tt.want)
			}
		})
	}
}

func TestSampleKind_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind SampleKind
		want bool
	}{
		{SampleKindSample, true},
		{SampleKindAllowed, true},
		{SampleKind("SAMPLE"), false},
		{SampleKind(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("SampleKind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestSegment_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []Segment{SegmentSentence, SegmentWord, SegmentGrapheme} {
		if !s.IsValid() {
			t.Errorf("Segment(%q).IsValid() = false", s)
		}
		if s.String() != string(s) {
			t.Errorf("Segment(%q).String() = %q", s, s.String())
		}
	}
	if Segment("phrase").IsValid() {
		t.Error(`Segment("phrase").IsValid() = true`)
	}
}
