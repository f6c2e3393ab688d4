package righter

import (
	"strings"

	"github.com/kittclouds/wordrighter/pkg/lexicon"
	"github.com/kittclouds/wordrighter/pkg/tagger"
)

// restore produces the replacement for a single token, agreeing with the
// token's tag. A Tagged replacement without a form for the tag leaves the
// token as written; a Literal the inflector can't handle is used as is.
func (p *Pipeline) restore(r lexicon.Replacement, tok tagger.Token) string {
	if r.IsTagged() {
		if form, ok := r.Form(string(tok.Tag)); ok && !blank(form) {
			return form
		}
		return tok.Text
	}

	if form, ok := p.inflector.Inflect(r.Literal(), string(tok.Tag)); ok && !blank(form) {
		return form
	}
	if blank(r.Literal()) {
		return tok.Text
	}
	return r.Literal()
}

// registered produces the replacement for a multi-word span without
// inflecting it. A Tagged replacement is read at the tag of the span's
// last token; without a form the span is kept.
func (p *Pipeline) registered(r lexicon.Replacement, span []tagger.Token) string {
	original := tagger.Detokenize(tagger.Texts(span))
	if r.IsTagged() {
		if form, ok := r.Form(string(span[len(span)-1].Tag)); ok && !blank(form) {
			return form
		}
		return original
	}
	if blank(r.Literal()) {
		return original
	}
	return r.Literal()
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
