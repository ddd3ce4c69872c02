package tokenize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/heartmarshall/synphony-backend/internal/domain"
)

// Placeholders stand in for markup while the sentence pattern runs, so that
// every tag is a single character the pattern can reason about.
const (
	delimiter     = "\x00"
	lineBreakMark = "\x01"
	crlfMark      = "\x02"
	spaceMarker   = "\x03"
	openTagMark   = "\x04"
	closeTagMark  = "\x05"
	selfTagMark   = "\x06"
	emptyTagMark  = "\x07"
	nbspMark      = "\x08"
)

// Sentence-ending punctuation every language gets.
const baseSentenceEnding = "\u17D4!.?\u055C\u055E\u0589\u061F\u06D4\u0700\u0701\u0702\u0964\u0965\u104B\u1362\u1367\u1368\u166E\u1803\u1809\u1944\u1945\u203C\u203D\u2047\u2048\u2049\u3002\uFE52\uFE56\uFE57\uFF01\uFF0E\uFF1F\uFF61\u00A7"

// Punctuation that continues a sentence when it follows sentence-ending
// punctuation ("Dr. Who, ...").
const sentenceContinuing = ",-:;\u055D\u060C\u060D\u07F8\u1802\u1808\u3001\uFE10\uFE11\uFE13\uFE14\uFE50\uFE51\uFE54\uFE55\uFF0C\uFF0D\uFF1A\uFF1B\uFF64"

// Paragraph-ending characters.
const paragraphEnding = "\n\r\u0085\u2028\u2029"

var (
	brTag      = regexp.MustCompile(`(<br></br>|<br>|<br />|<br/>)`)
	openTag    = regexp.MustCompile(`<[a-zA-Z]+([^<>]*[^/<>])?>`)
	closeTag   = regexp.MustCompile(`</[a-zA-Z]+>`)
	selfTag    = regexp.MustCompile(`<[a-zA-Z]+[^<>]*/>`)
	tagAttrs   = regexp.MustCompile(` .*>`)
	phraseEnd  = regexp.MustCompile(`(\|+)`)
	paragraphs = regexp.MustCompile(`[^` + paragraphEnding + `]*[` + paragraphEnding + `]+|[^` + paragraphEnding + `]+$`)
	anyTagMark = strings.NewReplacer(openTagMark, "", closeTagMark, "", selfTagMark, "", emptyTagMark, "")
)

// Tokenizer splits HTML into sentences. A Tokenizer is immutable and safe for
// concurrent use; build a new one to change the punctuation set.
type Tokenizer struct {
	extra             string
	spaceEndsSentence bool
	sentenceEnd       *regexp2.Regexp
}

// New builds a Tokenizer. extraSentencePunct lists additional sentence-ending
// characters, given literally or as \uXXXX escapes (\UXXXX is accepted too),
// optionally separated by whitespace. The escape \u0020 makes a plain space
// end a sentence, which suits scripts written without sentence punctuation.
func New(extraSentencePunct string) (*Tokenizer, error) {
	extra, spaceEnds, err := parseExtraPunctuation(extraSentencePunct)
	if err != nil {
		return nil, err
	}

	spaceChars := `\s` + ClassEscape(paragraphEnding) + `\u0006\u0007\u0008`
	whiteSpace := `[` + spaceChars + `\u200B]*`
	interSentence := `(` + whiteSpace
	if !spaceEnds {
		interSentence += `[` + spaceChars + `]` + whiteSpace
	}
	interSentence += `)`

	trailing := `['"\p{Pe}\p{Pf}\p{Pi}\u0005]`
	afterSEP := `(?:[\u0008\u202F]*` + trailing + `)*`

	expr := `([` + ClassEscape(extra+baseSentenceEnding) + `]+` + afterSEP + `)` +
		`([\u0004]*)` +
		interSentence +
		`([\u0005]*)` +
		`(?![^\p{L}]*[\p{Ll}` + ClassEscape(sentenceContinuing) + `]+)`

	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: sentence punctuation %q: %v", domain.ErrConfiguration, extraSentencePunct, err)
	}
	return &Tokenizer{extra: extra, spaceEndsSentence: spaceEnds, sentenceEnd: re}, nil
}

// Default returns a Tokenizer with no extra sentence punctuation.
func Default() *Tokenizer {
	t, err := New("")
	if err != nil {
		panic(err)
	}
	return t
}

// ExtraPunctuation returns the decoded extra sentence-ending characters.
func (t *Tokenizer) ExtraPunctuation() string { return t.extra }

// parseExtraPunctuation decodes the user-facing punctuation list. Periods are
// dropped since they always end sentences.
func parseExtraPunctuation(s string) (string, bool, error) {
	var (
		b         strings.Builder
		spaceEnds bool
		rs        = []rune(s)
	)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '\\' && i+1 < len(rs) && (rs[i+1] == 'u' || rs[i+1] == 'U') {
			if i+6 > len(rs) {
				return "", false, fmt.Errorf("%w: truncated escape in sentence punctuation %q", domain.ErrConfiguration, s)
			}
			n, err := strconv.ParseUint(string(rs[i+2:i+6]), 16, 32)
			if err != nil {
				return "", false, fmt.Errorf("%w: bad escape %q in sentence punctuation", domain.ErrConfiguration, string(rs[i:i+6]))
			}
			i += 5
			if rune(n) == ' ' {
				spaceEnds = true
			}
			if rune(n) != '.' {
				b.WriteRune(rune(n))
			}
			continue
		}
		if r == '.' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), spaceEnds, nil
}

// Sentences cuts an HTML string into sentence and inter-sentence space
// fragments. Concatenating the fragment texts gives back the input, except
// that every <br> form is written as <br />. Markup is kept: a tag left open
// at the end of a fragment is closed there and reopened in the next one.
// The phrase delimiter | always ends a fragment.
func (t *Tokenizer) Sentences(textHTML string) []domain.TextFragment {
	s := brTag.ReplaceAllString(textHTML, lineBreakMark)
	s = strings.ReplaceAll(s, "\r\n", crlfMark)

	openTags := openTag.FindAllString(s, -1)
	s = openTag.ReplaceAllString(s, openTagMark)
	closeTags := closeTag.FindAllString(s, -1)
	s = closeTag.ReplaceAllString(s, closeTagMark)
	selfTags := selfTag.FindAllString(s, -1)
	s = selfTag.ReplaceAllString(s, selfTagMark)
	s = strings.ReplaceAll(s, openTagMark+closeTagMark, emptyTagMark)
	s = strings.ReplaceAll(s, "&nbsp;", nbspMark)

	tags := &tagQueues{open: openTags, close: closeTags, self: selfTags}
	out := []domain.TextFragment{}

	for _, para := range paragraphs.FindAllString(s, -1) {
		marked, err := t.sentenceEnd.Replace(para, "$1"+delimiter+spaceMarker+"$2$3$4"+delimiter, -1, -1)
		if err == nil {
			para = marked
		}
		para = phraseEnd.ReplaceAllString(para, "${1}"+delimiter)
		para = strings.ReplaceAll(para, lineBreakMark, "<br />")
		para = strings.ReplaceAll(para, crlfMark, "\r\n")

		out = append(out, tags.restore(strings.Split(para, delimiter))...)
	}
	return out
}

type tagQueues struct {
	open, close, self []string
}

func shift(q *[]string) string {
	if len(*q) == 0 {
		return ""
	}
	v := (*q)[0]
	*q = (*q)[1:]
	return v
}

// restore puts the markup back into the fragments of one paragraph and turns
// them into TextFragments.
func (q *tagQueues) restore(pieces []string) []domain.TextFragment {
	var (
		out      []domain.TextFragment
		unclosed []string
		prevBare string
	)
	for j, frag := range pieces {
		bare := anyTagMark.Replace(frag)

		reopen := strings.Join(unclosed, "")
		if strings.HasPrefix(frag, spaceMarker) {
			frag = spaceMarker + reopen + frag[1:]
		} else {
			frag = reopen + frag
		}

		frag = strings.ReplaceAll(frag, emptyTagMark, openTagMark+closeTagMark)
		for strings.Contains(frag, openTagMark) {
			tag := shift(&q.open)
			frag = strings.Replace(frag, openTagMark, tag, 1)
			unclosed = append(unclosed, tag)
		}
		for strings.Contains(frag, closeTagMark) {
			frag = strings.Replace(frag, closeTagMark, shift(&q.close), 1)
			if len(unclosed) > 0 {
				unclosed = unclosed[:len(unclosed)-1]
			}
		}
		for i := len(unclosed) - 1; i >= 0; i-- {
			tag := unclosed[i]
			if tag == "" {
				continue
			}
			frag += "</" + tagAttrs.ReplaceAllString(tag[1:], ">")
		}
		for strings.Contains(frag, selfTagMark) {
			frag = strings.Replace(frag, selfTagMark, shift(&q.self), 1)
		}
		frag = strings.ReplaceAll(frag, nbspMark, "&nbsp;")

		if j < len(pieces)-1 || bare != "" {
			switch {
			case strings.HasPrefix(frag, spaceMarker):
				out = append(out, newFragment(frag[1:], true))
			case j > 0 && strings.HasSuffix(prevBare, "|") && startsWithSpace(bare):
				lead := leadingSpace(frag)
				out = append(out, newFragment(frag[:lead], true))
				if lead < len(frag) {
					out = append(out, newFragment(frag[lead:], false))
				}
			default:
				out = append(out, newFragment(frag, false))
			}
		}
		prevBare = bare
	}
	return out
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return isJSSpace(r)
	}
	return false
}

func leadingSpace(s string) int {
	for i, r := range s {
		if !isJSSpace(r) {
			return i
		}
	}
	return len(s)
}

func newFragment(text string, isSpace bool) domain.TextFragment {
	plain := TextContent(strings.ReplaceAll(text, "<br />", "\n"))
	return domain.TextFragment{
		Text:       text,
		IsSentence: !isSpace,
		IsSpace:    isSpace,
		Words:      Words(plain),
	}
}
