package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tagger performs Part-of-Speech tagging with context awareness.
// It is read-only after construction and safe for concurrent use.
type Tagger struct {
	// closed class words are never retagged by context rules
	closed map[string]Tag
	// open class words carry a best-guess tag that context may override
	open map[string]Tag
}

// NewTagger creates a new Tagger with the default English lexicon
func NewTagger() *Tagger {
	t := &Tagger{
		closed: make(map[string]Tag, 256),
		open:   make(map[string]Tag, 512),
	}
	t.loadDefaultLexicon()
	return t
}

// TagText tokenizes text and tags the resulting tokens.
func (t *Tagger) TagText(text string) []Token {
	tokens := Tokenize(text)
	tags := t.Tag(Texts(tokens))
	for i := range tokens {
		tokens[i].Tag = tags[i]
	}
	return tokens
}

// Tag processes a slice of words and returns their Treebank tags.
// Uses a 2-pass approach:
// 1. Baseline: Dictionary lookup + Suffix Heuristics
// 2. Reinforcement: Contextual correction rules
func (t *Tagger) Tag(words []string) []Tag {
	tags := make([]Tag, len(words))

	// Pass 1: Baseline
	quoteOpen := false
	for i, word := range words {
		if word == `"` {
			tags[i] = OpenQ
			if quoteOpen {
				tags[i] = CloseQ
			}
			quoteOpen = !quoteOpen
			continue
		}
		tags[i] = t.lookupBaseline(words, i)
	}

	// Pass 2: Context Reinforcement
	for i := 1; i < len(tags); i++ {
		if _, fixed := t.closed[fastLower(words[i])]; fixed {
			continue
		}
		prev := tags[i-1]
		prevWord := fastLower(words[i-1])
		cur := tags[i]

		switch {
		// Rule 1: determiner/possessive/adjective force noun
		// "the [run]", "a fast [attack]", "my [runs]"
		case (prev == DT || prev == PRPS || prev == POS || prev == JJ) && (cur == VB || cur == VBP):
			tags[i] = NN
		case (prev == DT || prev == PRPS || prev == POS) && cur == VBZ:
			tags[i] = NNS

		// Rule 2: modal or infinitive marker forces base verb
		// "can [run]", "want to [attack]"
		case (prev == MD || prev == TO) && cur == VBP:
			tags[i] = VB
		case (prev == MD || prev == TO) && cur == NN && t.open[fastLower(words[i])] == VB:
			tags[i] = VB

		// Rule 3: subject pronouns select finite present forms
		// "they [run]", "she [runs]"
		case prev == PRP && singularSubject(prevWord) && cur == NNS:
			tags[i] = VBZ
		case prev == PRP && pluralSubject(prevWord) && cur == VB:
			tags[i] = VBP

		// Rule 4: "Of" forces Noun
		case prevWord == "of" && (cur == VB || cur == VBP):
			tags[i] = NN
		}

		// Rule 5: perfect and passive auxiliaries take the participle
		// "has [walked]", "was not [taken]"
		if tags[i] == VBD && t.afterAuxiliary(words, tags, i) {
			tags[i] = VBN
		}
	}

	return tags
}

// afterAuxiliary reports whether words[i] follows a form of have or be,
// allowing one intervening adverb.
func (t *Tagger) afterAuxiliary(words []string, tags []Tag, i int) bool {
	j := i - 1
	if j > 0 && tags[j] == RB {
		j--
	}
	return auxiliaries[fastLower(words[j])]
}

func (t *Tagger) lookupBaseline(words []string, i int) Tag {
	word := words[i]
	lower := fastLower(word)

	if tag, ok := punctTag(word); ok {
		return tag
	}
	if lower == "'s" {
		if i > 0 && isPronoun(fastLower(words[i-1])) {
			return VBZ
		}
		return POS
	}
	if tag, ok := t.closed[lower]; ok {
		return tag
	}
	if tag, ok := t.open[lower]; ok {
		if isCapitalized(word) && !sentenceStart(words, i) {
			return NNP
		}
		return tag
	}
	return t.inferPOS(words, i)
}

func (t *Tagger) inferPOS(words []string, i int) Tag {
	word := words[i]
	lower := fastLower(word)

	if isNumber(lower) {
		return CD
	}

	// Proper noun: capitalized away from the sentence start
	if isCapitalized(word) && !sentenceStart(words, i) {
		return NNP
	}

	if tag, ok := t.gradedAdjective(lower); ok {
		return tag
	}

	// Suffix heuristics
	switch {
	case strings.HasSuffix(lower, "ly") && len(lower) > 4:
		return RB
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return VBG
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return VBD
	case hasAnySuffix(lower, "ness", "tion", "sion", "ment", "ity", "ship", "hood", "ism", "ist"):
		return NN
	case hasAnySuffix(lower, "ful", "less", "ous", "ive", "able", "ible", "ish"):
		return JJ
	case strings.HasSuffix(lower, "s") && len(lower) > 3 &&
		!hasAnySuffix(lower, "ss", "us", "is"):
		return NNS
	}

	// Default: noun
	return NN
}

// gradedAdjective recognizes comparatives and superlatives of lexicon
// adjectives: bigger, nicest, happier.
func (t *Tagger) gradedAdjective(lower string) (Tag, bool) {
	for _, g := range []struct {
		suffix string
		tag    Tag
	}{{"est", JJS}, {"er", JJR}} {
		if !strings.HasSuffix(lower, g.suffix) {
			continue
		}
		stem := strings.TrimSuffix(lower, g.suffix)
		candidates := []string{stem, stem + "e"}
		if n := len(stem); n >= 2 && stem[n-1] == stem[n-2] {
			candidates = append(candidates, stem[:n-1])
		}
		if strings.HasSuffix(stem, "i") {
			candidates = append(candidates, strings.TrimSuffix(stem, "i")+"y")
		}
		for _, c := range candidates {
			if t.open[c] == JJ {
				return g.tag, true
			}
		}
	}
	return "", false
}

// ============================================================================
// Helpers
// ============================================================================

// punctTag maps punctuation and symbol tokens onto their tags.
func punctTag(word string) (Tag, bool) {
	switch word {
	case ".", "!", "?":
		return Period, true
	case ",":
		return Comma, true
	case ":", ";", "-", "--", "...", "…", "–", "—":
		return Colon, true
	case "(", "[", "{":
		return LParen, true
	case ")", "]", "}":
		return RParen, true
	case "``", "“", "‘":
		return OpenQ, true
	case "''", "”", "'":
		return CloseQ, true
	case "$":
		return Dollar, true
	case "#":
		return Hash, true
	}
	r, _ := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return SYM, true
	}
	if unicode.IsPunct(r) && strings.Trim(word, string(r)) == "" {
		// runs such as "!!" or "??"
		if strings.ContainsRune(".!?", r) {
			return Period, true
		}
		return Colon, true
	}
	if unicode.IsSymbol(r) {
		return SYM, true
	}
	return "", false
}

func sentenceStart(words []string, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch words[j] {
		case `"`, "``", "“", "(", "[", "'":
			continue
		case ".", "!", "?", "...", ":":
			return true
		}
		return false
	}
	return true
}

func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',' || r == '-':
		default:
			return false
		}
	}
	return digits > 0
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) && len(s) > len(suf)+2 {
			return true
		}
	}
	return false
}

// fastLower returns the string if it contains no uppercase characters,
// otherwise returns strings.ToLower(s). Avoids allocation for common case.
func fastLower(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' || c >= utf8.RuneSelf {
			return strings.ToLower(s)
		}
	}
	return s
}
