// Package tagger splits text into tokens, annotates them with Penn Treebank
// part-of-speech tags, and reassembles token sequences into text.
package tagger

// ============================================================================
// TextRange
// ============================================================================

// TextRange represents a byte offset span in text
type TextRange struct {
	Start int
	End   int
}

// NewRange creates a new TextRange
func NewRange(start, end int) TextRange {
	return TextRange{Start: start, End: end}
}

// Len returns the length of the range
func (r TextRange) Len() int {
	return r.End - r.Start
}

// Slice extracts the text covered by this range
func (r TextRange) Slice(text string) string {
	if r.Start < 0 || r.End > len(text) || r.Start > r.End {
		return ""
	}
	return text[r.Start:r.End]
}

// ============================================================================
// Tag
// ============================================================================

// Tag is a Penn Treebank part-of-speech tag such as "NN" or "VBD".
type Tag string

const (
	NN   Tag = "NN"
	NNS  Tag = "NNS"
	NNP  Tag = "NNP"
	NNPS Tag = "NNPS"
	VB   Tag = "VB"
	VBD  Tag = "VBD"
	VBG  Tag = "VBG"
	VBN  Tag = "VBN"
	VBP  Tag = "VBP"
	VBZ  Tag = "VBZ"
	MD   Tag = "MD"
	JJ   Tag = "JJ"
	JJR  Tag = "JJR"
	JJS  Tag = "JJS"
	RB   Tag = "RB"
	RBR  Tag = "RBR"
	RBS  Tag = "RBS"
	DT   Tag = "DT"
	IN   Tag = "IN"
	TO   Tag = "TO"
	CC   Tag = "CC"
	CD   Tag = "CD"
	EX   Tag = "EX"
	PRP  Tag = "PRP"
	PRPS Tag = "PRP$"
	POS  Tag = "POS"
	RP   Tag = "RP"
	UH   Tag = "UH"
	WDT  Tag = "WDT"
	WP   Tag = "WP"
	WRB  Tag = "WRB"
	SYM  Tag = "SYM"

	Period Tag = "."
	Comma  Tag = ","
	Colon  Tag = ":"
	OpenQ  Tag = "``"
	CloseQ Tag = "''"
	LParen Tag = "("
	RParen Tag = ")"
	Dollar Tag = "$"
	Hash   Tag = "#"
)

// knownTags is every tag the tagger can emit.
var knownTags = map[Tag]bool{
	NN: true, NNS: true, NNP: true, NNPS: true, VB: true, VBD: true, VBG: true,
	VBN: true, VBP: true, VBZ: true, MD: true, JJ: true, JJR: true, JJS: true,
	RB: true, RBR: true, RBS: true, DT: true, IN: true, TO: true, CC: true,
	CD: true, EX: true, PRP: true, PRPS: true, POS: true, RP: true, UH: true,
	WDT: true, WP: true, WRB: true, SYM: true, Period: true, Comma: true,
	Colon: true, OpenQ: true, CloseQ: true, LParen: true, RParen: true,
	Dollar: true, Hash: true,
}

// IsKnown reports whether s is a tag the tagger emits.
func IsKnown(s string) bool {
	return knownTags[Tag(s)]
}

// IsNominal returns true if the tag is noun-like
func (t Tag) IsNominal() bool {
	return t == NN || t == NNS || t == NNP || t == NNPS || t == PRP
}

// IsVerbal returns true if the tag is verb-like
func (t Tag) IsVerbal() bool {
	switch t {
	case VB, VBD, VBG, VBN, VBP, VBZ, MD:
		return true
	}
	return false
}

// IsModifier returns true if the tag is an adjective or adverb
func (t Tag) IsModifier() bool {
	switch t {
	case JJ, JJR, JJS, RB, RBR, RBS:
		return true
	}
	return false
}

// IsPunct returns true for punctuation tags
func (t Tag) IsPunct() bool {
	switch t {
	case Period, Comma, Colon, OpenQ, CloseQ, LParen, RParen:
		return true
	}
	return false
}

// ============================================================================
// Token
// ============================================================================

// Token is a tagged word in text. Text keeps its original casing.
type Token struct {
	Text  string
	Tag   Tag
	Range TextRange
}

// Texts returns the surface strings of tokens.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
