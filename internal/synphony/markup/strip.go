// Package markup annotates editable HTML with reader feedback: words outside
// the current stage, sentences over the level limit and similar.
package markup

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony/tokenize"
)

var (
	textBreak = regexp.MustCompile(`<br></br>|<br>|<br />|<br/>|<p></p>|<p>|<p />|<p/>|\n`)
	// Invisible bookmark spans editors insert to restore the selection.
	editorBookmark = regexp.MustCompile(`<span [^>]*style="display: none;"[^>]*>[^<]*</span>`)
)

// RemoveSynphonyMarkup unwraps the spans a previous annotation inserted
// (sentence, word and grapheme segments). Everything else is kept byte for
// byte.
func RemoveSynphonyMarkup(fragment string) string {
	if !strings.Contains(fragment, "data-segment") {
		return fragment
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var out bytes.Buffer
	out.Grow(len(fragment))

	// One entry per open span: true when the span is ours and was dropped.
	var spans []bool
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				break
			}
			// Unparseable input is returned untouched.
			return fragment
		}
		// TagName lower-cases the buffer in place.
		raw := append([]byte(nil), z.Raw()...)

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.Span {
				break
			}
			ours := isSegmentSpan(tok)
			if tt == html.SelfClosingTagToken {
				if ours {
					continue
				}
				break
			}
			spans = append(spans, ours)
			if ours {
				continue
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) != "span" || len(spans) == 0 {
				break
			}
			ours := spans[len(spans)-1]
			spans = spans[:len(spans)-1]
			if ours {
				continue
			}
		}
		out.Write(raw)
	}
	return out.String()
}

func isSegmentSpan(tok html.Token) bool {
	for _, a := range tok.Attr {
		if a.Key == "data-segment" && domain.Segment(a.Val).IsValid() {
			return true
		}
	}
	return false
}

// RemoveAllMarkup returns the text of an HTML fragment. Line and paragraph
// breaks become spaces and editor bookmarks are dropped, so neither changes
// word counts.
func RemoveAllMarkup(fragment string) string {
	s := textBreak.ReplaceAllString(fragment, " ")
	s = editorBookmark.ReplaceAllString(s, "")
	return tokenize.TextContent(s)
}
