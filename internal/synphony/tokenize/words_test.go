package tokenize

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

const countingText = `This is sentence 1. "This is 'sentence 2.'" this is sentence.3. ` +
	`This is the 4th sentence! Is this the 5th sentence? Is "this" "sentence 6?"`

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		letters []string
		want    []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "whitespace only", text: " ", want: []string{}},
		{name: "lower cased", text: "The CAT", want: []string{"the", "cat"}},
		{name: "edge punctuation dropped", text: `"Hello," she said.`, want: []string{"hello", "she", "said"}},
		{name: "inner punctuation kept", text: "well-known don't", want: []string{"well-known", "don't"}},
		{name: "comma inside word kept", text: "ch,ad d,ach", want: []string{"ch,ad", "d,ach"}},
		{name: "br separates words", text: "cat<br>dog<br />rat<br/>bat", want: []string{"cat", "dog", "rat", "bat"}},
		{name: "newlines separate words", text: "one\r\ntwo\nthree four five.\r\n six. seven",
			want: []string{"one", "two", "three", "four", "five", "six", "seven"}},
		{name: "zero width space separates", text: "a\u200bb", want: []string{"a", "b"}},
		{name: "direction marks separate", text: "a\u200fb\u2066c", want: []string{"a", "b", "c"}},
		{name: "apostrophe is punctuation by default", text: "'twas", want: []string{"twas"}},
		{name: "apostrophe as letter", text: "'twas", letters: []string{"'"}, want: []string{"'twas"}},
		{name: "numbers are words", text: "I have 3 cats.", want: []string{"i", "have", "3", "cats"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Words(tt.text, tt.letters...))
		})
	}
}

func TestWords_Counts(t *testing.T) {
	t.Parallel()

	assert.Len(t, Words(countingText), 25)
	assert.Len(t, UniqueWords(countingText), 10)
	assert.Contains(t, Words(countingText), "sentence.3")
}

func TestUniq_KeepsFirstOccurrence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"b", "a", "c"}, Uniq([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Uniq(nil))
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"12":       true,
		"1.5":      true,
		".5":       true,
		"-3":       true,
		"1e5":      true,
		"0x1f":     true,
		"":         true,
		"1,000":    false,
		"4th":      false,
		"abc":      false,
		"infinity": false,
		"1.2.3":    false,
	}
	for in, want := range tests {
		assert.Equal(t, want, IsNumeric(in), "IsNumeric(%q)", in)
	}
}

func TestTextContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "plain text", want: "plain text"},
		{in: "a &amp; b", want: "a & b"},
		{in: "<b>bold</b> and <i>it</i>", want: "bold and it"},
		{in: "a&nbsp;b", want: "a\u00a0b"},
		{in: `<span class="x"><!-- note -->cat</span>`, want: "cat"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TextContent(tt.in), "TextContent(%q)", tt.in)
	}
}

func TestClassEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `a\-b\]\\`, ClassEscape(`a-b]\`))
	assert.Equal(t, `\u000A`, ClassEscape("\n"))
	assert.Equal(t, "é", ClassEscape("é"))
}

func TestQuoteLetter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `\?`, QuoteLetter("?"))
	assert.Equal(t, `a\+`, QuoteLetter("a+"))
	assert.Equal(t, "ch", QuoteLetter("ch"))
}

func TestWords_PunctuationCacheIsBounded(t *testing.T) {
	t.Parallel()

	for i := 0; i < punctCacheSize+20; i++ {
		letters := strconv.Itoa(i) + "'"
		assert.Equal(t, []string{"don't"}, Words("Don't!", letters))
	}
	assert.LessOrEqual(t, punctCache.Len(), punctCacheSize)
}
