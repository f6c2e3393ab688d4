package morph

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheSize bounds the lemma cache.
const CacheSize = 50_000

// suffixRule rewrites a trailing suffix.
type suffixRule struct {
	suffix  string
	replace string
}

// Ordered longest-suffix first; the first rule producing a plausible stem wins.
var (
	nounRules = []suffixRule{
		{"ches", "ch"}, {"shes", "sh"}, {"sses", "ss"}, {"xes", "x"}, {"zzes", "zz"},
		{"ies", "y"}, {"men", "man"}, {"s", ""},
	}
	verbRules = []suffixRule{
		{"ches", "ch"}, {"shes", "sh"}, {"sses", "ss"}, {"xes", "x"}, {"zzes", "zz"},
		{"ies", "y"}, {"ied", "y"}, {"ing", ""}, {"ed", ""},
		{"es", "e"}, {"s", ""},
	}
	adjectiveRules = []suffixRule{
		{"iest", "y"}, {"ier", "y"}, {"est", ""}, {"er", ""},
	}
)

type lemmaKey struct {
	word     string
	category Category
}

// Lemmatizer reduces inflected words to their dictionary form.
// It is safe for concurrent use.
type Lemmatizer struct {
	exceptions map[Category]map[string]string
	cache      *lru.Cache[lemmaKey, string]
}

// NewLemmatizer creates a Lemmatizer with the built-in exception tables.
func NewLemmatizer() *Lemmatizer {
	cache, _ := lru.New[lemmaKey, string](CacheSize)
	l := &Lemmatizer{
		exceptions: make(map[Category]map[string]string),
		cache:      cache,
	}
	l.loadExceptions()
	return l
}

func (l *Lemmatizer) loadExceptions() {
	nouns := make(map[string]string, len(irregularPlurals))
	for singular, plural := range irregularPlurals {
		nouns[plural] = singular
	}
	nouns["data"] = "datum"
	nouns["indices"] = "index"
	nouns["buses"] = "bus"

	verbs := make(map[string]string, len(irregularVerbs)*2)
	for base, forms := range irregularVerbs {
		if forms.Past != base {
			verbs[forms.Past] = base
		}
		if forms.Participle != base {
			verbs[forms.Participle] = base
		}
	}
	for base, forms := range presentForms {
		verbs[forms.Third] = base
		if forms.Plural != base {
			verbs[forms.Plural] = base
		}
	}
	for _, w := range []string{"am", "were", "being"} {
		verbs[w] = "be"
	}
	verbs["having"] = "have"
	verbs["doing"] = "do"
	for _, base := range []string{"die", "lie", "tie"} {
		verbs[base[:1]+"ying"] = base
		verbs[base+"d"] = base
	}
	// "lay" is both lie's past and a base verb; prefer the base
	delete(verbs, "lay")

	adjectives := make(map[string]string)
	for base, c := range irregularAdjectives {
		adjectives[c.Comparative] = base
		adjectives[c.Superlative] = base
	}
	// more/most are shared by many and much
	adjectives["more"] = "much"
	adjectives["most"] = "much"
	adjectives["worse"] = "bad"
	adjectives["worst"] = "bad"

	adverbs := make(map[string]string)
	for base, c := range irregularAdverbs {
		adverbs[c.Comparative] = base
		adverbs[c.Superlative] = base
	}
	adverbs["more"] = "much"
	adverbs["most"] = "much"

	l.exceptions[Noun] = nouns
	l.exceptions[Verb] = verbs
	l.exceptions[Adjective] = adjectives
	l.exceptions[Satellite] = adjectives
	l.exceptions[Adverb] = adverbs
}

// Lemmatize reduces a word treating it as a noun.
func (l *Lemmatizer) Lemmatize(word string) string {
	return l.LemmatizeAs(word, Noun)
}

// LemmatizeAs reduces a word using the rules of the given category.
// The result is lower-cased; a word no rule applies to is returned lower-cased.
func (l *Lemmatizer) LemmatizeAs(word string, category Category) string {
	lower := strings.ToLower(strings.TrimSpace(word))
	if lower == "" {
		return ""
	}

	key := lemmaKey{word: lower, category: category}
	if cached, ok := l.cache.Get(key); ok {
		return cached
	}

	lemma := l.reduce(lower, category)
	l.cache.Add(key, lemma)
	return lemma
}

func (l *Lemmatizer) reduce(word string, category Category) string {
	if base, ok := l.exceptions[category][word]; ok {
		return base
	}
	if baseForms[word] || invariantNouns[word] || !isAlpha(word) {
		return word
	}

	switch category {
	case Noun:
		return reduceNoun(word)
	case Verb:
		return reduceVerb(word)
	case Adjective, Satellite:
		return reduceAdjective(word)
	}
	// adverbs have no productive inflection besides the exception list
	return word
}

func reduceNoun(word string) string {
	if strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us") ||
		strings.HasSuffix(word, "is") || strings.HasSuffix(word, "ous") {
		return word
	}
	for _, r := range nounRules {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, r.suffix) + r.replace
		if r.suffix == "ies" && len(word) <= 4 {
			// lies, ties, pies
			stem = strings.TrimSuffix(word, "s")
		}
		if len(stem) < 3 || !hasVowel(stem) {
			continue
		}
		return stem
	}
	return word
}

func reduceVerb(word string) string {
	for _, r := range verbRules {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, r.suffix)
		if candidate := stem + r.replace; len(candidate) < 2 || !hasVowel(candidate) {
			continue
		}
		switch r.suffix {
		case "ies":
			if len(stem) <= 1 {
				return stem + "ie"
			}
		case "ing", "ed":
			return restoreStem(stem)
		case "s":
			if strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us") {
				return word
			}
		}
		return stem + r.replace
	}
	return word
}

func reduceAdjective(word string) string {
	for _, r := range adjectiveRules {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, r.suffix)
		if candidate := stem + r.replace; len(candidate) < 2 || !hasVowel(candidate) {
			continue
		}
		if r.replace != "" {
			return stem + r.replace
		}
		return restoreStem(stem)
	}
	return word
}

// restoreStem repairs a stem left by stripping -ed/-ing/-er/-est:
// "stopp" -> "stop", "bak" -> "bake", "danc" -> "dance".
func restoreStem(stem string) string {
	n := len(stem)
	if n >= 3 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) {
		switch stem[n-1] {
		case 'l', 's', 'z', 'f':
			// call, pass, buzz, stuff keep the double
			return stem
		}
		return stem[:n-1]
	}
	last := stem[n-1]
	switch {
	case last == 'v' || last == 'c' || last == 'u':
		return stem + "e"
	case strings.HasSuffix(stem, "rg") || strings.HasSuffix(stem, "dg"):
		return stem + "e"
	case syllables(stem) == 1 && endsCVC(stem):
		return stem + "e"
	}
	return stem
}

// ============================================================================
// Letter Utilities
// ============================================================================

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func hasVowel(s string) bool {
	for i := 0; i < len(s); i++ {
		if isVowel(s[i]) || (s[i] == 'y' && i > 0) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// syllables counts vowel groups, a cheap syllable estimate.
func syllables(s string) int {
	count := 0
	prev := false
	for i := 0; i < len(s); i++ {
		v := isVowel(s[i]) || (s[i] == 'y' && i > 0)
		if v && !prev {
			count++
		}
		prev = v
	}
	return count
}

// endsCVC reports consonant-vowel-consonant at the end, last not w/x/y.
func endsCVC(s string) bool {
	n := len(s)
	if n < 2 {
		return false
	}
	c2 := s[n-1]
	if isVowel(c2) || c2 == 'w' || c2 == 'x' || c2 == 'y' {
		return false
	}
	if !isVowel(s[n-2]) {
		return false
	}
	return n == 2 || !isVowel(s[n-3])
}
