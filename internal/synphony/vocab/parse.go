package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/synphony-backend/internal/domain"
)

var lineComment = regexp.MustCompile(`//[^\r\n]*\r\n`)

// IsLanguageData reports whether a sample text is a serialized word file
// rather than plain text.
func IsLanguageData(content string) bool {
	return strings.HasPrefix(content, `{"LangName":`) || strings.HasPrefix(content, "setLangData(")
}

type wireLanguage struct {
	LangName                     string          `json:"LangName"`
	LangID                       string          `json:"LangID"`
	LanguageSortOrder            []string        `json:"LanguageSortOrder"`
	ProductivityGPCSequence      []string        `json:"ProductivityGPCSequence"`
	Numbers                      []int           `json:"Numbers"`
	GPCS                         []domain.GPC    `json:"GPCS"`
	VocabularyGroupsDescriptions []string        `json:"VocabularyGroupsDescriptions"`
	VocabularyGroups             int             `json:"VocabularyGroups"`
	Group1                       []wireWord      `json:"group1"`
	Group2                       []wireWord      `json:"group2,omitempty"`
	Group3                       []wireWord      `json:"group3,omitempty"`
	Group4                       []wireWord      `json:"group4,omitempty"`
	Group5                       []wireWord      `json:"group5,omitempty"`
	Group6                       []wireWord      `json:"group6,omitempty"`
	UseFullGPCNotation           bool            `json:"UseFullGPCNotation"`
	AlwaysMatch                  json.RawMessage `json:"AlwaysMatch,omitempty"`
	SyllableBreak                string          `json:"SyllableBreak,omitempty"`
	StressSymbol                 string          `json:"StressSymbol,omitempty"`
	MorphemeBreak                string          `json:"MorphemeBreak,omitempty"`
}

// wireWord is a word as stored in word files. Files in the wild carry
// Reverse as an array and other derived keys; those are recomputed.
type wireWord struct {
	Name         string   `json:"Name"`
	Count        int      `json:"Count"`
	Group        int      `json:"Group,omitempty"`
	PartOfSpeech string   `json:"PartOfSpeech"`
	GPCForm      []string `json:"GPCForm"`
	WordShape    string   `json:"WordShape,omitempty"`
	Syllables    int      `json:"Syllables"`
}

func (w *wireLanguage) groups() [MaxGroups][]wireWord {
	return [MaxGroups][]wireWord{w.Group1, w.Group2, w.Group3, w.Group4, w.Group5, w.Group6}
}

// ParseLanguageData reads a word file. Besides plain JSON it accepts the
// legacy script form setLangData({...}), an unquoted GPCS key and // line
// comments.
func ParseLanguageData(raw string) (*LanguageData, error) {
	if i := strings.Index(raw, "{"); i > 0 {
		raw = raw[i:]
	}
	if j := strings.LastIndex(raw, "}"); j >= 0 && j < len(raw)-1 {
		raw = raw[:j+1]
	}
	raw = strings.Replace(raw, "GPCS:", `"GPCS":`, 1)
	raw = lineComment.ReplaceAllString(raw, "\r\n")

	var w wireLanguage
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, fmt.Errorf("vocab.ParseLanguageData: %w: %v", domain.ErrInvalidSettings, err)
	}

	l := NewLanguageData()
	l.LangName = w.LangName
	l.LangID = w.LangID
	l.LanguageSortOrder = w.LanguageSortOrder
	l.ProductivityGPCSequence = w.ProductivityGPCSequence
	if w.Numbers != nil {
		l.Numbers = w.Numbers
	}
	if w.GPCS != nil {
		l.GPCs = w.GPCS
	}
	l.VocabularyGroupsDescriptions = w.VocabularyGroupsDescriptions
	if w.VocabularyGroups > 0 {
		l.VocabularyGroups = w.VocabularyGroups
	}
	l.UseFullGPCNotation = w.UseFullGPCNotation
	l.SyllableBreak = w.SyllableBreak
	l.StressSymbol = w.StressSymbol
	l.MorphemeBreak = w.MorphemeBreak
	l.AlwaysMatch = stringOrList(w.AlwaysMatch)

	for gi, words := range w.groups() {
		for _, ww := range words {
			syll := ww.Syllables
			if syll < 1 {
				syll = 1
			}
			count := ww.Count
			if count < 1 {
				count = 1
			}
			l.appendWord(gi, &domain.WordRecord{
				Name:         ww.Name,
				Count:        count,
				Group:        gi + 1,
				PartOfSpeech: ww.PartOfSpeech,
				GPCForm:      ww.GPCForm,
				WordShape:    ww.WordShape,
				Syllables:    syll,
			})
		}
	}
	return l, nil
}

// MarshalJSON writes the word file format read by ParseLanguageData.
func (l *LanguageData) MarshalJSON() ([]byte, error) {
	w := wireLanguage{
		LangName:                     l.LangName,
		LangID:                       l.LangID,
		LanguageSortOrder:            nonNil(l.LanguageSortOrder),
		ProductivityGPCSequence:      nonNil(l.ProductivityGPCSequence),
		Numbers:                      l.Numbers,
		GPCS:                         l.GPCs,
		VocabularyGroupsDescriptions: nonNil(l.VocabularyGroupsDescriptions),
		VocabularyGroups:             l.activeGroups(),
		UseFullGPCNotation:           l.UseFullGPCNotation,
		SyllableBreak:                l.SyllableBreak,
		StressSymbol:                 l.StressSymbol,
		MorphemeBreak:                l.MorphemeBreak,
	}
	if len(l.AlwaysMatch) > 0 {
		am, err := json.Marshal(l.AlwaysMatch)
		if err != nil {
			return nil, err
		}
		w.AlwaysMatch = am
	}
	dst := []*[]wireWord{&w.Group1, &w.Group2, &w.Group3, &w.Group4, &w.Group5, &w.Group6}
	for gi, words := range l.groups {
		out := make([]wireWord, 0, len(words))
		for _, dw := range words {
			out = append(out, wireWord{
				Name:         dw.Name,
				Count:        dw.Count,
				Group:        dw.Group,
				PartOfSpeech: dw.PartOfSpeech,
				GPCForm:      dw.GPCForm,
				WordShape:    dw.WordShape,
				Syllables:    dw.Syllables,
			})
		}
		if gi == 0 || len(out) > 0 {
			*dst[gi] = out
		}
	}
	return json.Marshal(w)
}

func stringOrList(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil && one != "" {
		return []string{one}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
