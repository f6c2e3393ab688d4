package righter

import (
	"strings"

	"github.com/kittclouds/wordrighter/pkg/lexicon"
	"github.com/kittclouds/wordrighter/pkg/tagger"
)

// match is the outcome of a phrase walk.
type match struct {
	substitute string
	found      bool
	// end is the index of the last token consumed
	end int
}

// walk finds the longest key starting at tokens[i], whose lower-cased text
// must be a root child. A single-word key is restored for its tag; longer
// keys use their replacement as registered. An extension that is not a key
// keeps the best match so far and the walk goes on while the trie has a
// path.
func (p *Pipeline) walk(v lexicon.View, tokens []tagger.Token, i int) match {
	phrase := strings.ToLower(tokens[i].Text)
	node, ok := v.LookupRoot(phrase)
	if !ok {
		return match{end: i}
	}

	best := match{end: i}
	if r, ok := v.Resolve(phrase); ok {
		best = match{substitute: p.restore(r, tokens[i]), found: true, end: i}
	}

	for j := i + 1; j < len(tokens); j++ {
		word := strings.ToLower(tokens[j].Text)
		child, ok := node.Child(word)
		if !ok {
			break
		}
		node = child
		phrase += " " + child.Word()

		if r, ok := v.Resolve(phrase); ok {
			best = match{substitute: p.registered(r, tokens[i:j+1]), found: true, end: j}
		}
	}
	return best
}
