package tagger

import "strings"

// attachLeft tokens are written without a space before them.
var attachLeft = map[string]bool{
	".": true, ",": true, "!": true, "?": true, ";": true, ":": true, "...": true,
	")": true, "]": true, "}": true, "%": true, "''": true, "”": true, "…": true,
	"n't": true, "'s": true, "'re": true, "'ve": true, "'ll": true, "'d": true, "'m": true,
}

// attachRight tokens are written without a space after them.
var attachRight = map[string]bool{
	"(": true, "[": true, "{": true, "$": true, "#": true, "``": true, "“": true,
}

// Detokenize reassembles words into display text, undoing the spacing that
// Tokenize introduced around punctuation, clitics and quotes.
func Detokenize(words []string) string {
	var b strings.Builder
	doubleOpen, singleOpen := false, false
	glueNext := true

	for i, w := range words {
		if w == "" {
			continue
		}
		glue := glueNext
		glueNext = false

		switch {
		case w == `"`:
			if doubleOpen {
				glue = true
			} else {
				glueNext = true
			}
			doubleOpen = !doubleOpen
		case w == "'":
			switch {
			case singleOpen:
				glue = true
				singleOpen = false
			case i > 0 && strings.HasSuffix(strings.ToLower(words[i-1]), "s"):
				// possessive plural: dogs'
				glue = true
			default:
				glueNext = true
				singleOpen = true
			}
		case attachLeft[strings.ToLower(strings.ReplaceAll(w, "’", "'"))]:
			glue = true
		case isPunctRun(w):
			glue = true
		}
		if attachRight[w] {
			glueNext = true
		}

		if !glue {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}

// isPunctRun reports runs such as "!!" or "?!?".
func isPunctRun(w string) bool {
	if len(w) < 2 {
		return false
	}
	return strings.Trim(w, ".!?") == ""
}
