package lexicon

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"github.com/pkg/errors"
)

// ============================================================================
// Mention Scanning
// ============================================================================

// Mention is a whole-word occurrence of a key in raw text.
type Mention struct {
	Key   string `json:"key"`
	Text  string `json:"text"`  // original text slice (preserves casing)
	Start int    `json:"start"` // byte offset start
	End   int    `json:"end"`   // byte offset end
}

// scanner is an automaton over the folded keys of one lexicon generation.
type scanner struct {
	gen  uint64
	ac   *ahocorasick.Automaton
	keys []string // pattern index -> key
}

// Mentions reports the keys mentioned in text, leftmost-longest and
// non-overlapping, matched case-insensitively on whole words. The automaton
// is rebuilt on first use after an insert.
func (l *Lexicon) Mentions(text string) ([]Mention, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sc, err := l.currentScanner()
	if err != nil {
		return nil, err
	}
	if sc.ac == nil || text == "" {
		return nil, nil
	}

	haystack, offsets := fold(text)
	matches := sc.ac.FindAllOverlapping(haystack)

	candidates := make([]Mention, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End > len(haystack) || m.Start >= m.End {
			continue
		}
		start, end := offsets[m.Start], offsets[m.End]
		if start >= end || !wordBoundary(text, start, end) {
			continue
		}
		candidates = append(candidates, Mention{
			Key:   sc.keys[m.PatternID],
			Text:  text[start:end],
			Start: start,
			End:   end,
		})
	}

	// leftmost first, longest first at the same start
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		return candidates[i].End > candidates[j].End
	})

	result := make([]Mention, 0, len(candidates))
	last := -1
	for _, c := range candidates {
		if c.Start < last {
			continue
		}
		result = append(result, c)
		last = c.End
	}
	return result, nil
}

// currentScanner returns the automaton for the current generation, building
// it if needed. Caller holds at least the read lock.
func (l *Lexicon) currentScanner() (*scanner, error) {
	l.scanMu.Lock()
	defer l.scanMu.Unlock()

	if l.scanner != nil && l.scanner.gen == l.gen {
		return l.scanner, nil
	}

	folds := make([]string, 0, len(l.folded))
	for key := range l.folded {
		folds = append(folds, key)
	}
	sort.Strings(folds)

	sc := &scanner{gen: l.gen, keys: make([]string, len(folds))}
	patterns := make([]string, len(folds))
	for i, key := range folds {
		folded, _ := fold(key)
		patterns[i] = string(folded)
		sc.keys[i] = l.folded[key]
	}

	if len(patterns) > 0 {
		// Use LeftmostLongest for standard phrase extraction behavior (prefer "big red dog" over "big red")
		ac, err := ahocorasick.NewBuilder().
			AddStrings(patterns).
			SetMatchKind(ahocorasick.LeftmostLongest).
			SetPrefilter(true).
			Build()
		if err != nil {
			return nil, errors.Wrap(err, "build mention automaton")
		}
		sc.ac = ac
	}

	l.scanner = sc
	return sc, nil
}

// fold lower-cases s rune by rune. offsets maps every byte index of the
// folded text, plus its length, back to the byte index in s where that rune
// starts, since a lower-cased rune may encode to a different width.
func fold(s string) ([]byte, []int) {
	b := make([]byte, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			b = append(b, c)
			offsets = append(offsets, i)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b = append(b, c)
			offsets = append(offsets, i)
			i++
			continue
		}
		n := len(b)
		b = utf8.AppendRune(b, unicode.ToLower(r))
		for ; n < len(b); n++ {
			offsets = append(offsets, i)
		}
		i += size
	}
	return b, append(offsets, len(s))
}

// wordBoundary reports whether text[start:end] is not part of a longer word.
func wordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}
