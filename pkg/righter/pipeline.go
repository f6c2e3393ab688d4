// Package righter rewrites text by replacing wordbook phrases with their
// registered substitutes, inflected to match the words they replace.
//
// Each position goes through SCAN -> PHRASE_MATCH -> EMIT:
//
//	SCAN          the lower-cased token is a trie root child: try a phrase walk
//	PHRASE_MATCH  longest key from here wins; its substitute is re-tokenized
//	              and emitted, and the position jumps past the phrase
//	(fallback)    no phrase: lemmatize the token and look the lemma up
//	EMIT          advance one beyond what was consumed
package righter

import (
	"strings"
	"time"

	"github.com/kittclouds/wordrighter/pkg/lexicon"
	"github.com/kittclouds/wordrighter/pkg/morph"
	"github.com/kittclouds/wordrighter/pkg/tagger"
)

// Pipeline is the substitution engine. It holds no per-call state; every
// pass reads one consistent view of the shared Lexicon.
type Pipeline struct {
	lex        *lexicon.Lexicon
	tagger     *tagger.Tagger
	lemmatizer *morph.Lemmatizer
	inflector  *morph.Inflector
}

// New creates a Pipeline over lex with the default tagger, lemmatizer and
// inflector.
func New(lex *lexicon.Lexicon) *Pipeline {
	return &Pipeline{
		lex:        lex,
		tagger:     tagger.NewTagger(),
		lemmatizer: morph.NewLemmatizer(),
		inflector:  morph.NewInflector(),
	}
}

// Lexicon returns the wordbook the pipeline reads.
func (p *Pipeline) Lexicon() *lexicon.Lexicon {
	return p.lex
}

// Process tags text, corrects it and detokenizes the result. changed is
// false when nothing was replaced.
func (p *Pipeline) Process(text string) (string, bool) {
	start := time.Now()
	defer func() {
		processDuration.Observe(time.Since(start).Seconds())
	}()

	words, changed := p.Correct(p.tagger.TagText(text))
	if changed {
		processTotal.WithLabelValues("true").Inc()
	} else {
		processTotal.WithLabelValues("false").Inc()
	}
	return tagger.Detokenize(words), changed
}

// Correct replaces wordbook phrases in tokens and returns the output words.
func (p *Pipeline) Correct(tokens []tagger.Token) ([]string, bool) {
	out := make([]string, 0, len(tokens))
	changed := false

	p.lex.Read(func(v lexicon.View) {
		for i := 0; i < len(tokens); i++ {
			tok := tokens[i]

			// SCAN -> PHRASE_MATCH
			if _, ok := v.LookupRoot(strings.ToLower(tok.Text)); ok {
				if m := p.walk(v, tokens, i); m.found {
					changed = true
					substitutionsTotal.WithLabelValues(pathPhrase).Inc()
					out = p.appendRetokenized(out, m.substitute, tokens[i:m.end+1])
					i = m.end
					continue
				}
			}

			// single word
			if sub, ok := p.single(v, tok); ok {
				changed = true
				substitutionsTotal.WithLabelValues(pathLemma).Inc()
				out = append(out, sub)
				continue
			}
			out = append(out, tok.Text)
		}
	})
	return out, changed
}

// single looks up the lemma of tok. The noun reading is tried first; if it
// leaves the word unchanged, the reading for the token's tag is used.
func (p *Pipeline) single(v lexicon.View, tok tagger.Token) (string, bool) {
	lemma := p.lemmatizer.Lemmatize(tok.Text)
	if lemma == strings.ToLower(tok.Text) {
		lemma = p.lemmatizer.LemmatizeAs(tok.Text, morph.CategoryOf(string(tok.Tag)))
	}
	if lemma == "" {
		return "", false
	}
	r, ok := v.Resolve(lemma)
	if !ok {
		return "", false
	}
	return p.restore(r, tok), true
}

// appendRetokenized splits a substitute with the tokenizer, which decides
// the output segmentation.
func (p *Pipeline) appendRetokenized(out []string, substitute string, span []tagger.Token) []string {
	sub := tagger.Texts(tagger.Tokenize(substitute))
	if len(sub) == 0 {
		return append(out, tagger.Texts(span)...)
	}
	return append(out, sub...)
}
