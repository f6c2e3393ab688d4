package bot

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/kittclouds/wordrighter/pkg/lexicon"
	"github.com/kittclouds/wordrighter/pkg/tagger"
)

// ErrMalformedStandin is returned for a standin body that isn't
// "<phrase> : <replacement>".
var ErrMalformedStandin = errors.New("malformed standin")

// ParseStandin splits a standin body into its phrase and replacement.
//
// The body must hold exactly one ':' with text on both sides. A replacement
// written as "TAG=form, TAG=form" where every TAG is a known part-of-speech
// tag becomes a Tagged entry; anything else is a Literal.
func ParseStandin(body string) (string, lexicon.Replacement, error) {
	parts := strings.Split(body, ":")
	if len(parts) != 2 {
		return "", lexicon.Replacement{}, errors.Wrapf(ErrMalformedStandin, "want one ':' in %q", body)
	}

	phrase := strings.TrimSpace(parts[0])
	standin := strings.TrimSpace(parts[1])
	if phrase == "" || standin == "" {
		return "", lexicon.Replacement{}, errors.Wrapf(ErrMalformedStandin, "empty side in %q", body)
	}

	if forms, ok := parseForms(standin); ok {
		return phrase, lexicon.NewTagged(forms), nil
	}
	return phrase, lexicon.NewLiteral(standin), nil
}

// parseForms reads "NN=mouse, NNS=mice". ok is false unless every piece is
// a known tag with a non-empty form.
func parseForms(s string) (map[string]string, bool) {
	if !strings.Contains(s, "=") {
		return nil, false
	}

	forms := make(map[string]string)
	for _, piece := range strings.Split(s, ",") {
		tag, form, found := strings.Cut(piece, "=")
		if !found {
			return nil, false
		}
		tag = strings.TrimSpace(tag)
		form = strings.TrimSpace(form)
		if !tagger.IsKnown(tag) || form == "" {
			return nil, false
		}
		forms[tag] = form
	}
	return forms, true
}
