// Package vocab holds the vocabulary of a language: its grapheme table and
// word lists. LanguageData is the mutable builder; Build freezes it into an
// Index that answers word selection queries.
package vocab

import (
	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony/grapheme"
)

// MaxGroups is the number of vocabulary groups a language can carry.
const MaxGroups = 6

// LanguageData accumulates graphemes and words for one language. It is not
// safe for concurrent use; build an Index to share the data.
type LanguageData struct {
	LangName                     string
	LangID                       string
	LanguageSortOrder            []string
	ProductivityGPCSequence      []string
	Numbers                      []int
	GPCs                         []domain.GPC
	VocabularyGroupsDescriptions []string
	VocabularyGroups             int
	UseFullGPCNotation           bool

	// Symbols accepted in any word regardless of the known graphemes.
	AlwaysMatch   []string
	SyllableBreak string
	StressSymbol  string
	MorphemeBreak string

	groups [MaxGroups][]*domain.WordRecord
	byName map[string]*domain.WordRecord
}

// NewLanguageData returns an empty language with one vocabulary group.
func NewLanguageData() *LanguageData {
	return &LanguageData{
		Numbers:          []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		GPCs:             []domain.GPC{},
		VocabularyGroups: 1,
		byName:           make(map[string]*domain.WordRecord),
	}
}

// AddGrapheme registers graphemes, lower-cased. Known graphemes are skipped.
func (l *LanguageData) AddGrapheme(graphemes ...string) {
	for _, g := range graphemes {
		g = domain.LowerWord(g)
		if g == "" || l.hasGPC(g) {
			continue
		}
		l.GPCs = append(l.GPCs, domain.NewGPC(g))
	}
}

func (l *LanguageData) hasGPC(g string) bool {
	for _, gpc := range l.GPCs {
		if gpc.GPC == g {
			return true
		}
	}
	return false
}

// AddWord records an occurrence of word. A new word goes to group 1 with
// count freq (1 when freq is not positive) and its grapheme form computed
// from the current grapheme table. A known word has its count raised by freq,
// or by one.
func (l *LanguageData) AddWord(word string, freq int) {
	w := domain.LowerWord(word)
	if w == "" {
		return
	}
	if dw := l.FindWord(w); dw != nil {
		if freq > 0 {
			dw.Count += freq
		} else {
			dw.Count++
		}
		return
	}

	count := 1
	if freq > 0 {
		count = freq
	}
	l.appendWord(0, &domain.WordRecord{
		Name:      w,
		Count:     count,
		Group:     1,
		GPCForm:   grapheme.Form(w, l.SortedGraphemes()),
		Syllables: 1,
	})
}

// AddWords adds each word once.
func (l *LanguageData) AddWords(words ...string) {
	for _, w := range words {
		l.AddWord(w, 0)
	}
}

// FindWord returns the record for word in any active group, or nil.
func (l *LanguageData) FindWord(word string) *domain.WordRecord {
	if l.byName == nil {
		l.byName = make(map[string]*domain.WordRecord)
	}
	return l.byName[word]
}

// Group returns the words of group n (1-based) in insertion order.
func (l *LanguageData) Group(n int) []*domain.WordRecord {
	if n < 1 || n > MaxGroups {
		return nil
	}
	return l.groups[n-1]
}

// SortedGraphemes lists the grapheme spellings of the table, longest first.
func (l *LanguageData) SortedGraphemes() []string {
	gs := make([]string, 0, len(l.GPCs))
	for _, gpc := range l.GPCs {
		g := gpc.Grapheme
		if g == "" {
			g = gpc.GPC
		}
		gs = append(gs, g)
	}
	return grapheme.SortByLengthDesc(gs)
}

// Merge adds the group 1 words of other that this language does not know
// yet. Graphemes and settings of other are ignored: a word file loaded as
// sample text contributes words only.
func (l *LanguageData) Merge(other *LanguageData) int {
	if other == nil {
		return 0
	}
	added := 0
	for _, w := range other.groups[0] {
		if l.FindWord(w.Name) != nil {
			continue
		}
		cp := *w
		l.appendWord(0, &cp)
		added++
	}
	return added
}

func (l *LanguageData) appendWord(group int, w *domain.WordRecord) {
	if l.byName == nil {
		l.byName = make(map[string]*domain.WordRecord)
	}
	l.groups[group] = append(l.groups[group], w)
	if group < l.activeGroups() {
		if _, ok := l.byName[w.Name]; !ok {
			l.byName[w.Name] = w
		}
	}
}

func (l *LanguageData) activeGroups() int {
	switch {
	case l.VocabularyGroups < 1:
		return 1
	case l.VocabularyGroups > MaxGroups:
		return MaxGroups
	}
	return l.VocabularyGroups
}

// alwaysMatchSymbols collects the symbols accepted in any word.
func (l *LanguageData) alwaysMatchSymbols() []string {
	out := make([]string, 0, len(l.AlwaysMatch)+3)
	for _, s := range l.AlwaysMatch {
		if s != "" {
			out = append(out, s)
		}
	}
	for _, s := range []string{l.SyllableBreak, l.StressSymbol, l.MorphemeBreak} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
