package markup

import (
	"strings"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony/classify"
	"github.com/heartmarshall/synphony-backend/internal/synphony/tokenize"
)

const segmentWordAttr = `data-segment="word"`

// Element is the inner HTML of one editable leaf element. Tag is the
// element name; paragraphs ("p") add a paragraph break to the page text.
type Element struct {
	Tag  string `json:"tag,omitempty"`
	HTML string `json:"html"`
}

// LeveledOptions are the limits a leveled check enforces. Zero disables a
// limit.
type LeveledOptions struct {
	MaxWordsPerSentence int
	MaxWordsPerPage     int
}

// LeveledResult is the outcome of CheckLeveled.
type LeveledResult struct {
	Elements         []Element `json:"elements"`
	TotalWordCount   int       `json:"total_word_count"`
	PageTooManyWords bool      `json:"page_too_many_words"`
	// AllWords is the plain text of the page, kept for book statistics.
	AllWords string `json:"all_words"`
}

// CheckLeveled marks the sentences of each element that are longer than
// the level allows and counts the words on the page.
func CheckLeveled(elements []Element, opts LeveledOptions, tok *tokenize.Tokenizer) LeveledResult {
	res := LeveledResult{Elements: make([]Element, 0, len(elements))}
	var all strings.Builder

	for _, el := range elements {
		fragments := tok.Sentences(RemoveSynphonyMarkup(el.HTML))

		var out strings.Builder
		for _, frag := range fragments {
			if frag.IsSpace {
				out.WriteString(frag.Text)
				all.WriteByte(' ')
				continue
			}

			clean := RemoveAllMarkup(frag.Text)
			n := len(tokenize.Words(clean))
			res.TotalWordCount += n
			all.WriteString(clean)

			if opts.MaxWordsPerSentence > 0 && n > opts.MaxWordsPerSentence {
				out.WriteString(`<span class="` + domain.ClassSentenceTooLong + `" data-segment="` + domain.SegmentSentence.String() + `">`)
				out.WriteString(frag.Text)
				out.WriteString("</span>")
				continue
			}
			out.WriteString(frag.Text)
		}
		if strings.EqualFold(el.Tag, "p") {
			all.WriteString("\r\n")
		}
		res.Elements = append(res.Elements, Element{Tag: el.Tag, HTML: out.String()})
	}

	res.PageTooManyWords = opts.MaxWordsPerPage > 0 && res.TotalWordCount > opts.MaxWordsPerPage
	res.AllWords = all.String()
	return res
}

// DecodableOptions are the word lists of a decodable check.
type DecodableOptions struct {
	Focus      []string
	Cumulative []string
	// SightWords must be lower-case; story words are.
	SightWords []string
	Known      []string
}

// DecodableResult is the outcome of CheckDecodable.
type DecodableResult struct {
	Elements []Element               `json:"elements"`
	Story    domain.StoryCheckResult `json:"story"`
}

// CheckDecodable classifies the words of all elements together and marks
// sight words, possible words and words the reader cannot know yet.
// Numbers are never marked.
func CheckDecodable(elements []Element, opts DecodableOptions, checker *classify.Checker) DecodableResult {
	cleaned := make([]string, len(elements))
	var text strings.Builder
	for i, el := range elements {
		cleaned[i] = RemoveSynphonyMarkup(el.HTML)
		text.WriteByte(' ')
		text.WriteString(RemoveAllMarkup(cleaned[i]))
	}

	story := checker.CheckStory(classify.Story{
		Focus:      opts.Focus,
		Cumulative: opts.Cumulative,
		Known:      opts.Known,
		Text:       text.String(),
		SightWords: strings.Join(opts.SightWords, " "),
	})

	hasText := strings.TrimSpace(text.String()) != ""
	notFound := story.NotFound()

	res := DecodableResult{Elements: make([]Element, len(elements)), Story: story}
	for i, el := range elements {
		h := cleaned[i]
		if hasText && strings.TrimSpace(h) != "" {
			h = WrapWords(h, story.SightWords, domain.ClassSightWord, segmentWordAttr)
			h = WrapWords(h, story.PossibleWords, domain.ClassPossibleWord, segmentWordAttr)
			h = WrapWords(h, notFound, domain.ClassWordNotFound, segmentWordAttr)
		}
		res.Elements[i] = Element{Tag: el.Tag, HTML: h}
	}
	return res
}

// MaxSentenceLength returns the word count of the longest sentence.
func MaxSentenceLength(elements []Element, tok *tokenize.Tokenizer) int {
	longest := 0
	for _, el := range elements {
		for _, frag := range tok.Sentences(RemoveAllMarkup(el.HTML)) {
			if frag.IsSentence && frag.WordCount() > longest {
				longest = frag.WordCount()
			}
		}
	}
	return longest
}

// TotalWordCount counts the words of all sentences of the elements.
func TotalWordCount(elements []Element, tok *tokenize.Tokenizer) int {
	total := 0
	for _, el := range elements {
		for _, frag := range tok.Sentences(RemoveAllMarkup(el.HTML)) {
			if frag.IsSentence {
				total += frag.WordCount()
			}
		}
	}
	return total
}
