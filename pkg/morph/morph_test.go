package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	cases := map[string]Category{
		"NN":   Noun,
		"NNS":  Noun,
		"NNP":  Noun,
		"VBD":  Verb,
		"VB":   Verb,
		"JJR":  Adjective,
		"RB":   Adverb,
		"DT":   Satellite,
		".":    Satellite,
		"PRP$": Satellite,
		"":     Satellite,
	}
	for tag, want := range cases {
		assert.Equal(t, want, CategoryOf(tag), "tag %q", tag)
	}
	assert.Equal(t, "v", Verb.String())
	assert.Equal(t, "s", Satellite.String())
}

func TestLemmatizeNoun(t *testing.T) {
	l := NewLemmatizer()
	cases := map[string]string{
		"dogs":     "dog",
		"Dogs":     "dog",
		"mice":     "mouse",
		"cities":   "city",
		"boxes":    "box",
		"churches": "church",
		"glasses":  "glass",
		"houses":   "house",
		"lies":     "lie",
		"bus":      "bus",
		"buses":    "bus",
		"news":     "news",
		"was":      "was",
		"the":      "the",
		"weather":  "weather",
		"running":  "running",
		"n't":      "n't",
	}
	for word, want := range cases {
		assert.Equal(t, want, l.Lemmatize(word), "word %q", word)
	}
}

func TestLemmatizeVerb(t *testing.T) {
	l := NewLemmatizer()
	cases := map[string]string{
		"running": "run",
		"ran":     "run",
		"was":     "be",
		"is":      "be",
		"walked":  "walk",
		"baked":   "bake",
		"stopped": "stop",
		"called":  "call",
		"tried":   "try",
		"loved":   "love",
		"danced":  "dance",
		"opened":  "open",
		"makes":   "make",
		"watches": "watch",
		"goes":    "go",
		"seeing":  "see",
		"lying":   "lie",
		"sing":    "sing",
		"need":    "need",
	}
	for word, want := range cases {
		assert.Equal(t, want, l.LemmatizeAs(word, Verb), "word %q", word)
	}
}

func TestLemmatizeAdjective(t *testing.T) {
	l := NewLemmatizer()
	cases := map[string]string{
		"bigger":   "big",
		"nicer":    "nice",
		"larger":   "large",
		"happiest": "happy",
		"taller":   "tall",
		"better":   "good",
		"worst":    "bad",
		"clever":   "clever",
	}
	for word, want := range cases {
		assert.Equal(t, want, l.LemmatizeAs(word, Adjective), "word %q", word)
	}
	assert.Equal(t, "well", l.LemmatizeAs("better", Adverb))
	assert.Equal(t, "quickly", l.LemmatizeAs("quickly", Adverb))
}

func TestLemmatizeCached(t *testing.T) {
	l := NewLemmatizer()
	first := l.LemmatizeAs("stopped", Verb)
	second := l.LemmatizeAs("STOPPED", Verb)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, l.cache.Len())
	assert.Equal(t, "", l.Lemmatize("   "))
}

func TestInflect(t *testing.T) {
	in := NewInflector()
	cases := []struct {
		base, tag, want string
	}{
		{"hound", "NN", "hound"},
		{"hound", "NNS", "hounds"},
		{"mouse", "NNS", "mice"},
		{"box", "NNS", "boxes"},
		{"city", "NNS", "cities"},
		{"day", "NNS", "days"},
		{"sheep", "NNS", "sheep"},
		{"go", "VBZ", "goes"},
		{"carry", "VBZ", "carries"},
		{"be", "VBZ", "is"},
		{"be", "VBP", "are"},
		{"be", "VBD", "was"},
		{"stop", "VBD", "stopped"},
		{"bake", "VBD", "baked"},
		{"play", "VBD", "played"},
		{"fix", "VBD", "fixed"},
		{"visit", "VBD", "visited"},
		{"take", "VBN", "taken"},
		{"run", "VBG", "running"},
		{"make", "VBG", "making"},
		{"see", "VBG", "seeing"},
		{"die", "VBG", "dying"},
		{"walk", "VB", "walk"},
		{"big", "JJR", "bigger"},
		{"big", "JJS", "biggest"},
		{"nice", "JJR", "nicer"},
		{"nice", "JJS", "nicest"},
		{"large", "JJR", "larger"},
		{"wide", "JJS", "widest"},
		{"safe", "JJR", "safer"},
		{"late", "JJS", "latest"},
		{"gentle", "JJR", "gentler"},
		{"gentle", "JJS", "gentlest"},
		{"polite", "JJR", "more polite"},
		{"happy", "JJR", "happier"},
		{"happy", "JJS", "happiest"},
		{"good", "JJS", "best"},
		{"beautiful", "JJR", "more beautiful"},
		{"quickly", "RBR", "more quickly"},
		{"fast", "RBS", "fastest"},
		{"well", "RBR", "better"},
		{"good boy", "NNS", "good boys"},
		{"look up", "VBD", "looked up"},
		{"Hound", "NNS", "Hounds"},
	}
	for _, tc := range cases {
		got, ok := in.Inflect(tc.base, tc.tag)
		assert.True(t, ok, "%s/%s", tc.base, tc.tag)
		assert.Equal(t, tc.want, got, "%s/%s", tc.base, tc.tag)
	}
}

func TestInflectUnsupported(t *testing.T) {
	in := NewInflector()
	for _, tag := range []string{"DT", "NNP", ".", "IN", ""} {
		_, ok := in.Inflect("hound", tag)
		assert.False(t, ok, "tag %q", tag)
	}
	_, ok := in.Inflect("  ", "NN")
	assert.False(t, ok)
}
