package domain

// GPC category and combining defaults for graphemes registered from settings.
const (
	GPCCategoryOther  = "other"
	GPCCombiningFalse = "false"
)

// GPC is a grapheme-phoneme correspondence: one orthographic unit of a
// language and the sound it stands for. Values are immutable once loaded.
type GPC struct {
	GPC       string   `json:"GPC"`
	GPCuc     string   `json:"GPCuc,omitempty"`
	Grapheme  string   `json:"Grapheme,omitempty"`
	Phoneme   string   `json:"Phoneme,omitempty"`
	Category  string   `json:"Category,omitempty"`
	Combining string   `json:"Combining,omitempty"`
	Frequency int      `json:"Frequency,omitempty"`
	TokenFreq int      `json:"TokenFreq,omitempty"`
	IPA       string   `json:"IPA,omitempty"`
	Alt       []string `json:"Alt,omitempty"`
}

// NewGPC builds the correspondence registered for a bare grapheme taken from
// reader settings: the phoneme is the grapheme itself.
func NewGPC(grapheme string) GPC {
	return GPC{
		GPC:       grapheme,
		GPCuc:     UpperWord(grapheme),
		Grapheme:  grapheme,
		Phoneme:   grapheme,
		Category:  GPCCategoryOther,
		Combining: GPCCombiningFalse,
		Frequency: 1,
		TokenFreq: 1,
		Alt:       []string{},
	}
}
