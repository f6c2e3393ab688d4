// Package morph provides English base-form reduction (lemmatization) and
// the inverse, synthesis of an inflected surface form for a POS tag.
//
// Tags are Penn Treebank strings ("NN", "VBD", "JJR", ...). The coarse
// Category is only used to choose which reduction rules apply.
package morph

import "strings"

// Category is a coarse part-of-speech family, WordNet style.
type Category int

const (
	Noun Category = iota
	Verb
	Adjective
	Adverb
	Satellite
)

// String returns the single-letter WordNet code for the category.
func (c Category) String() string {
	switch c {
	case Noun:
		return "n"
	case Verb:
		return "v"
	case Adjective:
		return "a"
	case Adverb:
		return "r"
	default:
		return "s"
	}
}

// CategoryOf maps a Treebank tag onto its family.
// Anything that isn't noun/verb/adjective/adverb-class is Satellite.
func CategoryOf(tag string) Category {
	switch {
	case strings.HasPrefix(tag, "N"):
		return Noun
	case strings.HasPrefix(tag, "V"):
		return Verb
	case strings.HasPrefix(tag, "J"):
		return Adjective
	case strings.HasPrefix(tag, "R"):
		return Adverb
	}
	return Satellite
}
