package markup

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

const (
	beforeWord = `(^\s*|>\s*|[\s\p{Z}]|\p{P}|&nbsp;)`
	afterWord  = `(?=(\s*\z|\s*<|[\s\p{Z}]|\p{P}+\s|\p{P}+<br|\s*&nbsp;|\p{P}+&nbsp;|\p{P}+\z))`

	wrapTimeout = time.Second
)

// WrapWords wraps every whole-word occurrence of words in
// <span class="cssClass" extra>. Matching ignores case and keeps the case of
// the text. Only text between tags is touched; tags and attribute values are
// copied as they are.
func WrapWords(fragment string, words []string, cssClass, extra string) string {
	escaped := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			escaped = append(escaped, quoteWord(w))
		}
	}
	if len(escaped) == 0 || strings.TrimSpace(fragment) == "" {
		return fragment
	}
	if extra != "" && !strings.HasPrefix(extra, " ") {
		extra = " " + extra
	}

	re, err := regexp2.Compile(beforeWord+"("+strings.Join(escaped, "|")+")"+afterWord, regexp2.IgnoreCase)
	if err != nil {
		return fragment
	}
	re.MatchTimeout = wrapTimeout
	repl := `$1<span class="` + cssClass + `"` + extra + `>$2</span>`

	parts := strings.Split(fragment, "<")
	for i, part := range parts {
		prefix := ""
		if i > 0 {
			end := strings.IndexByte(part, '>') + 1
			prefix, part = part[:end], part[end:]
		}
		if out, err := re.Replace(part, repl, -1, -1); err == nil {
			part = out
		}
		parts[i] = prefix + part
	}
	return strings.Join(parts, "<")
}

func quoteWord(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`#.?*+^$[]\(){}|-`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
