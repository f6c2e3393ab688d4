package morph

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Inflector synthesizes the surface form of a base word for a Treebank tag.
// It holds no state and is safe for concurrent use.
type Inflector struct{}

// NewInflector creates an Inflector.
func NewInflector() *Inflector {
	return &Inflector{}
}

// Inflect returns base inflected for tag. ok is false when the tag has no
// inflection paradigm (determiners, proper nouns, punctuation...) or base is
// empty. Multi-word bases inflect their head: the last word for nouns and
// modifiers, the first word for verbs ("look up" -> "looked up").
func (in *Inflector) Inflect(base, tag string) (string, bool) {
	base = strings.TrimSpace(base)
	if base == "" {
		return "", false
	}
	if !Inflectable(tag) {
		return "", false
	}

	words := strings.Fields(base)
	head := len(words) - 1
	if CategoryOf(tag) == Verb {
		head = 0
	}

	form := inflectWord(strings.ToLower(words[head]), tag)
	words[head] = matchCase(words[head], form)
	return strings.Join(words, " "), true
}

// Inflectable reports whether tag has an inflection paradigm.
func Inflectable(tag string) bool {
	switch tag {
	case "NN", "NNS",
		"VB", "VBP", "VBZ", "VBD", "VBN", "VBG", "MD",
		"JJ", "JJR", "JJS",
		"RB", "RBR", "RBS":
		return true
	}
	return false
}

func inflectWord(word, tag string) string {
	switch tag {
	case "NNS":
		return Pluralize(word)
	case "VBZ":
		return thirdPerson(word)
	case "VBP":
		if f, ok := presentForms[word]; ok {
			return f.Plural
		}
		return word
	case "VBD":
		return pastTense(word)
	case "VBN":
		return pastParticiple(word)
	case "VBG":
		return gerund(word)
	case "JJR":
		return compare(word, irregularAdjectives, false)
	case "JJS":
		return compare(word, irregularAdjectives, true)
	case "RBR":
		return compare(word, irregularAdverbs, false)
	case "RBS":
		return compare(word, irregularAdverbs, true)
	}
	return word
}

// ============================================================================
// Nouns
// ============================================================================

// Pluralize returns the plural of a singular noun.
func Pluralize(word string) string {
	if invariantNouns[word] {
		return word
	}
	if p, ok := irregularPlurals[word]; ok {
		return p
	}
	return addS(word)
}

// addS applies the regular -s / -es / -ies spelling rules.
func addS(word string) string {
	switch {
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"), strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return word + "es"
	case endsConsonantY(word):
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}

// ============================================================================
// Verbs
// ============================================================================

func thirdPerson(word string) string {
	if f, ok := presentForms[word]; ok {
		return f.Third
	}
	return addS(word)
}

func pastTense(word string) string {
	if f, ok := irregularVerbs[word]; ok {
		return f.Past
	}
	return addED(word)
}

func pastParticiple(word string) string {
	if f, ok := irregularVerbs[word]; ok {
		return f.Participle
	}
	return addED(word)
}

func addED(word string) string {
	switch {
	case strings.HasSuffix(word, "e"):
		return word + "d"
	case endsConsonantY(word):
		return word[:len(word)-1] + "ied"
	case doublesFinal(word):
		return word + word[len(word)-1:] + "ed"
	}
	return word + "ed"
}

func gerund(word string) string {
	switch {
	case word == "be":
		return "being"
	case strings.HasSuffix(word, "ie"):
		return word[:len(word)-2] + "ying"
	case strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "ee") &&
		!strings.HasSuffix(word, "ye") && !strings.HasSuffix(word, "oe") && len(word) > 2:
		return word[:len(word)-1] + "ing"
	case doublesFinal(word):
		return word + word[len(word)-1:] + "ing"
	}
	return word + "ing"
}

// ============================================================================
// Adjectives & Adverbs
// ============================================================================

func compare(word string, irregular map[string]comparison, superlative bool) string {
	if c, ok := irregular[word]; ok {
		if superlative {
			return c.Superlative
		}
		return c.Comparative
	}

	suffix, periphrastic := "er", "more "
	if superlative {
		suffix, periphrastic = "est", "most "
	}

	n := syllables(word)
	if silentE(word) {
		n = syllables(word[:len(word)-1])
	}
	if strings.HasSuffix(word, "ly") || n > 2 || (n == 2 && !strings.HasSuffix(word, "y")) {
		return periphrastic + word
	}

	switch {
	case strings.HasSuffix(word, "e"):
		return word + suffix[1:]
	case endsConsonantY(word):
		return word[:len(word)-1] + "i" + suffix
	case doublesFinal(word):
		return word + word[len(word)-1:] + suffix
	}
	return word + suffix
}

// ============================================================================
// Spelling Helpers
// ============================================================================

// silentE reports a final "e" after a consonant (nice, large, gentle).
func silentE(word string) bool {
	n := len(word)
	return n >= 3 && word[n-1] == 'e' && !isVowel(word[n-2])
}

func endsConsonantY(word string) bool {
	n := len(word)
	return n >= 2 && word[n-1] == 'y' && !isVowel(word[n-2])
}

// doublesFinal reports whether a monosyllable ends consonant-vowel-consonant
// and so doubles its final consonant (stop -> stopped, big -> bigger).
func doublesFinal(word string) bool {
	return syllables(word) == 1 && len(word) >= 3 && endsCVC(word)
}

// matchCase copies the capitalization pattern of original onto form.
func matchCase(original, form string) string {
	if original == "" || form == "" {
		return form
	}
	if original == strings.ToUpper(original) && utf8.RuneCountInString(original) > 1 {
		return strings.ToUpper(form)
	}
	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(form)
		return string(unicode.ToUpper(r)) + form[size:]
	}
	return form
}
