package domain

// SortType is the ordering applied to a stage word list.
type SortType string

const (
	SortAlphabetic  SortType = "alphabetic"
	SortByLength    SortType = "byLength"
	SortByFrequency SortType = "byFrequency"
)

func (s SortType) String() string { return string(s) }

func (s SortType) IsValid() bool {
	switch s {
	case SortAlphabetic, SortByLength, SortByFrequency:
		return true
	}
	return false
}

// SampleKind distinguishes corpus texts from allowed-word lists.
type SampleKind string

const (
	SampleKindSample  SampleKind = "sample"
	SampleKindAllowed SampleKind = "allowed"
)

func (k SampleKind) String() string { return string(k) }

func (k SampleKind) IsValid() bool {
	switch k {
	case SampleKindSample, SampleKindAllowed:
		return true
	}
	return false
}

// Segment is the value of the data-segment attribute on annotation spans.
type Segment string

const (
	SegmentSentence Segment = "sentence"
	SegmentWord     Segment = "word"
	SegmentGrapheme Segment = "grapheme"
)

func (s Segment) String() string { return string(s) }

func (s Segment) IsValid() bool {
	switch s {
	case SegmentSentence, SegmentWord, SegmentGrapheme:
		return true
	}
	return false
}

// CSS classes written into annotated HTML. Consumers style on these names.
const (
	ClassSentenceTooLong  = "sentence-too-long"
	ClassSightWord        = "sight-word"
	ClassWordNotFound     = "word-not-found"
	ClassPossibleWord     = "possible-word"
	ClassDesiredGrapheme  = "desired-grapheme"
	ClassPageTooManyWords = "page-too-many-words"
)
