package domain

// WordRecord is one entry of the vocabulary. Records are built by the
// vocabulary index and must be treated as read-only afterwards; slices are
// shared between copies.
type WordRecord struct {
	Name         string   `json:"Name"`
	Count        int      `json:"Count"`
	Group        int      `json:"Group,omitempty"`
	PartOfSpeech string   `json:"PartOfSpeech,omitempty"`
	GPCForm      []string `json:"GPCForm,omitempty"`
	WordShape    string   `json:"WordShape,omitempty"`
	Syllables    int      `json:"Syllables,omitempty"`
	Reverse      string   `json:"Reverse,omitempty"`

	// Derived index data.
	GPCS     []string `json:"GPCS,omitempty"`
	GPCCount int      `json:"GPCcount,omitempty"`

	IsSightWord bool `json:"isSightWord,omitempty"`
}

// WordNames projects records to their names, keeping order.
func WordNames(words []WordRecord) []string {
	names := make([]string, len(words))
	for i, w := range words {
		names[i] = w.Name
	}
	return names
}
