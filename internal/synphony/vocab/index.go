package vocab

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony/grapheme"
)

// MaxSyllables bounds the syllable lengths a query selects by default.
const MaxSyllables = 24

// DefaultCacheSize is the number of query results an Index remembers.
const DefaultCacheSize = 256

// ErrNoSyllableLengths is returned by SelectStrict when a query names no
// syllable length.
var ErrNoSyllableLengths = errors.New("please select a syllable length")

// Query selects words from an Index.
type Query struct {
	// Desired graphemes: a word qualifies if it contains any of them.
	Desired []string
	// Known graphemes: with RestrictToKnown, every grapheme of a word must
	// be known.
	Known           []string
	RestrictToKnown bool
	AllowUpperCase  bool
	// SyllableLengths defaults to 1..MaxSyllables when empty.
	SyllableLengths []int
	// Groups (1-based) defaults to every vocabulary group when empty.
	Groups        []int
	PartsOfSpeech []string
}

func (q Query) key() string {
	var b strings.Builder
	for _, part := range [][]string{q.Desired, q.Known, q.PartsOfSpeech} {
		b.WriteString(strconv.Itoa(len(part)))
		for _, s := range part {
			b.WriteByte(0)
			b.WriteString(s)
		}
		b.WriteByte(1)
	}
	for _, n := range q.SyllableLengths {
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(',')
	}
	b.WriteByte(1)
	for _, n := range q.Groups {
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(',')
	}
	fmt.Fprintf(&b, "|%t|%t", q.RestrictToKnown, q.AllowUpperCase)
	return b.String()
}

// Index is an immutable, query-ready snapshot of a language's vocabulary.
// It is safe for concurrent use.
type Index struct {
	langName     string
	gpcs         []domain.GPC
	fullNotation bool
	alwaysMatch  []string
	groupCount   int

	groups  [MaxGroups][]*domain.WordRecord
	buckets [MaxGroups]map[string][]*domain.WordRecord
	byName  map[string]*domain.WordRecord

	cache *lru.Cache[string, []domain.WordRecord]
}

// Build freezes the language into an Index. Words are copied; later changes
// to l do not show through.
func (l *LanguageData) Build() *Index {
	return l.BuildWithCache(DefaultCacheSize)
}

// BuildWithCache is Build with an explicit result cache size. A size below
// one disables caching.
func (l *LanguageData) BuildWithCache(cacheSize int) *Index {
	idx := &Index{
		langName:     l.LangName,
		gpcs:         slices.Clone(l.GPCs),
		fullNotation: l.UseFullGPCNotation,
		alwaysMatch:  l.alwaysMatchSymbols(),
		groupCount:   l.activeGroups(),
		byName:       make(map[string]*domain.WordRecord),
	}
	if cacheSize > 0 {
		// lru.New only fails on a non-positive size.
		idx.cache, _ = lru.New[string, []domain.WordRecord](cacheSize)
	}

	for g := 0; g < idx.groupCount; g++ {
		buckets := make(map[string][]*domain.WordRecord)
		words := make([]*domain.WordRecord, 0, len(l.groups[g]))
		for _, src := range l.groups[g] {
			w := *src
			w.GPCS = grapheme.Unique(w.GPCForm)
			w.GPCCount = len(w.GPCS)
			w.Reverse = grapheme.Reverse(w.GPCForm)
			rec := &w
			words = append(words, rec)
			for _, gpc := range w.GPCS {
				key := bucketKey(domain.LowerWord(gpc), w.Syllables)
				buckets[key] = append(buckets[key], rec)
			}
			if _, ok := idx.byName[w.Name]; !ok {
				idx.byName[w.Name] = rec
			}
		}
		idx.groups[g] = words
		idx.buckets[g] = buckets
	}
	return idx
}

func bucketKey(gpc string, syllables int) string {
	return gpc + "__" + strconv.Itoa(syllables)
}

// LangName is the language name from the word file, if any.
func (x *Index) LangName() string { return x.langName }

// GPCs returns the grapheme table.
func (x *Index) GPCs() []domain.GPC { return x.gpcs }

// GPCNames returns the grapheme keys of the table in table order.
func (x *Index) GPCNames() []string {
	out := make([]string, len(x.gpcs))
	for i, g := range x.gpcs {
		out[i] = g.GPC
	}
	return out
}

// FullNotation reports whether grapheme forms use the full GPC notation.
func (x *Index) FullNotation() bool { return x.fullNotation }

// Lookup returns the record for a word in the indexed groups.
func (x *Index) Lookup(name string) (domain.WordRecord, bool) {
	w, ok := x.byName[name]
	if !ok {
		return domain.WordRecord{}, false
	}
	return *w, true
}

// WordCount is the number of indexed words, duplicates across groups
// included.
func (x *Index) WordCount() int {
	n := 0
	for g := 0; g < x.groupCount; g++ {
		n += len(x.groups[g])
	}
	return n
}

// Words returns every indexed word, group by group.
func (x *Index) Words() []domain.WordRecord {
	out := make([]domain.WordRecord, 0, x.WordCount())
	for g := 0; g < x.groupCount; g++ {
		for _, w := range x.groups[g] {
			out = append(out, *w)
		}
	}
	return out
}

// Select returns the words matching q, without duplicates, in bucket order.
// Empty syllable lengths select 1..MaxSyllables and empty groups select all
// groups.
func (x *Index) Select(q Query) []domain.WordRecord {
	if len(q.SyllableLengths) == 0 {
		q.SyllableLengths = allSyllableLengths()
	}
	if len(q.Groups) == 0 {
		q.Groups = make([]int, x.groupCount)
		for i := range q.Groups {
			q.Groups[i] = i + 1
		}
	}
	out, _ := x.SelectStrict(q)
	return out
}

// SelectStrict is Select without defaults: it fails when q names no
// syllable length and selects nothing when q names no group.
func (x *Index) SelectStrict(q Query) ([]domain.WordRecord, error) {
	if len(q.SyllableLengths) == 0 {
		return nil, fmt.Errorf("vocab.Select: %w: %w", domain.ErrConfiguration, ErrNoSyllableLengths)
	}

	key := q.key()
	if x.cache != nil {
		if hit, ok := x.cache.Get(key); ok {
			return slices.Clone(hit), nil
		}
	}

	out := x.selectWords(q)
	if x.cache != nil {
		x.cache.Add(key, out)
	}
	return slices.Clone(out), nil
}

// SelectNames is Select projected to word names.
func (x *Index) SelectNames(q Query) []string {
	return domain.WordNames(x.Select(q))
}

func (x *Index) selectWords(q Query) []domain.WordRecord {
	candidates := x.candidates(q)

	var criteria map[string]struct{}
	if q.RestrictToKnown {
		criteria = x.criteria(q)
	}

	out := make([]domain.WordRecord, 0, len(candidates))
	seen := make(map[*domain.WordRecord]struct{}, len(candidates))
	for _, w := range candidates {
		if _, dup := seen[w]; dup {
			continue
		}
		if q.RestrictToKnown && !(allIn(w.GPCForm, criteria) && posMatches(w.PartOfSpeech, q.PartsOfSpeech)) {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, *w)
	}
	return out
}

// candidates concatenates the buckets of the selected groups, group by group.
func (x *Index) candidates(q Query) []*domain.WordRecord {
	var out []*domain.WordRecord
	for _, g := range q.Groups {
		if g < 1 || g > x.groupCount {
			continue
		}
		buckets := x.buckets[g-1]
		for _, d := range q.Desired {
			for _, s := range q.SyllableLengths {
				out = append(out, buckets[bucketKey(d, s)]...)
			}
		}
	}
	return out
}

func (x *Index) criteria(q Query) map[string]struct{} {
	set := make(map[string]struct{}, len(q.Known)*2+len(x.alwaysMatch))
	for _, k := range q.Known {
		set[k] = struct{}{}
	}
	if q.AllowUpperCase {
		for _, k := range q.Known {
			for _, g := range x.gpcs {
				if g.GPC == k && g.GPCuc != "" {
					set[g.GPCuc] = struct{}{}
				}
			}
		}
	}
	for _, s := range x.alwaysMatch {
		set[s] = struct{}{}
	}
	return set
}

func allIn(form []string, set map[string]struct{}) bool {
	for _, g := range form {
		if _, ok := set[g]; !ok {
			return false
		}
	}
	return true
}

func posMatches(pos string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	return pos != "" && slices.Contains(allowed, pos)
}

func allSyllableLengths() []int {
	out := make([]int, MaxSyllables)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
