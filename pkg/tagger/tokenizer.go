package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ============================================================================
// Tokenization
// ============================================================================

// clitics split off the end of a word, Treebank style.
var clitics = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

// repeatable punctuation collapses into one token ("...", "--", "!!").
const repeatable = ".-!?"

// Tokenize splits text into untagged tokens. Words keep their original
// casing; punctuation and symbols become their own tokens; clitics such as
// "n't" and "'s" are split from their host word. Whitespace is dropped.
func Tokenize(text string) []Token {
	// Heuristic: Average word length 5 + punctuation. ~1/6 of text len.
	tokens := make([]Token, 0, len(text)/6+1)
	start := -1

	flush := func(end int) {
		if start != -1 {
			tokens = appendWord(tokens, text, NewRange(start, end))
			start = -1
		}
	}

	for i := 0; i < len(text); {
		ch, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsLetter(ch) || unicode.IsDigit(ch) || invalidByte(ch, size):
			// invalid UTF-8 stays in the word so it is written back as read
			if start == -1 {
				start = i
			}
			i += size
			continue
		case start != -1 && (ch == '\'' || ch == '’'):
			// inside a word: don't, dog's, dogs'
			i += size
			continue
		case start != -1 && ch == '-' && nextIsWordChar(text, i+size):
			i += size
			continue
		case start != -1 && (ch == '.' || ch == ',') && prevIsDigit(text, i) && nextIsDigit(text, i+size):
			// 3.14, 1,000
			i += size
			continue
		}

		flush(i)
		if unicode.IsSpace(ch) {
			i += size
			continue
		}

		end := i + size
		if strings.ContainsRune(repeatable, ch) {
			for end < len(text) && rune(text[end]) == ch {
				end++
			}
		}
		tokens = append(tokens, Token{Text: text[i:end], Range: NewRange(i, end)})
		i = end
	}
	flush(len(text))
	return tokens
}

// appendWord appends a word token, splitting a trailing clitic or a
// trailing apostrophe into separate tokens.
func appendWord(tokens []Token, text string, r TextRange) []Token {
	word := r.Slice(text)

	if strings.HasSuffix(word, "'") && len(word) > 1 {
		tokens = appendWord(tokens, text, NewRange(r.Start, r.End-1))
		return append(tokens, Token{Text: "'", Range: NewRange(r.End-1, r.End)})
	}

	lower := strings.ToLower(strings.ReplaceAll(word, "’", "'"))
	for _, c := range clitics {
		if !strings.HasSuffix(lower, c) {
			continue
		}
		// the host keeps its bytes; "’" is wider than "'"
		split := r.End - cliticWidth(word, len(c))
		if split <= r.Start {
			break
		}
		return append(tokens,
			Token{Text: text[r.Start:split], Range: NewRange(r.Start, split)},
			Token{Text: text[split:r.End], Range: NewRange(split, r.End)},
		)
	}
	return append(tokens, Token{Text: word, Range: r})
}

// cliticWidth returns the byte width of the last n runes of word.
func cliticWidth(word string, n int) int {
	width := 0
	for i := 0; i < n && width < len(word); i++ {
		_, size := utf8.DecodeLastRuneInString(word[:len(word)-width])
		width += size
	}
	return width
}

func nextIsWordChar(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	ch, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func invalidByte(ch rune, size int) bool {
	return ch == utf8.RuneError && size == 1
}

func nextIsDigit(text string, i int) bool {
	return i < len(text) && text[i] >= '0' && text[i] <= '9'
}

func prevIsDigit(text string, i int) bool {
	return i > 0 && text[i-1] >= '0' && text[i-1] <= '9'
}
