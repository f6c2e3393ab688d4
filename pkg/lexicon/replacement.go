// Package lexicon holds the wordbook: a dictionary of phrases and their
// replacements, and a phrase trie over the lower-cased words of every key.
package lexicon

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidReplacement is returned when a persisted replacement is neither
// a string nor an object of strings.
var ErrInvalidReplacement = errors.New("replacement must be a string or an object of strings")

// Replacement is the value registered for a phrase. It is either a Literal
// base-form string, inflected on use, or a Tagged table mapping a Treebank
// tag to a ready inflected form.
type Replacement struct {
	literal string
	forms   map[string]string
}

// NewLiteral creates a Literal replacement.
func NewLiteral(base string) Replacement {
	return Replacement{literal: base}
}

// NewTagged creates a Tagged replacement. The map is copied.
func NewTagged(forms map[string]string) Replacement {
	cp := make(map[string]string, len(forms))
	for tag, form := range forms {
		cp[tag] = form
	}
	return Replacement{forms: cp}
}

// IsTagged reports whether r is a tag table.
func (r Replacement) IsTagged() bool {
	return r.forms != nil
}

// Literal returns the base string of a Literal replacement.
func (r Replacement) Literal() string {
	return r.literal
}

// Form returns the inflected form registered for tag.
func (r Replacement) Form(tag string) (string, bool) {
	form, ok := r.forms[tag]
	return form, ok
}

// Forms returns a copy of the tag table, nil for a Literal.
func (r Replacement) Forms() map[string]string {
	if r.forms == nil {
		return nil
	}
	return NewTagged(r.forms).forms
}

// String renders a Literal as its base and a Tagged table in the
// "TAG=form, TAG=form" syntax, tags sorted.
func (r Replacement) String() string {
	if !r.IsTagged() {
		return r.literal
	}
	tags := make([]string, 0, len(r.forms))
	for tag := range r.forms {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = tag + "=" + r.forms[tag]
	}
	return strings.Join(parts, ", ")
}

// Equal reports whether two replacements hold the same value.
func (r Replacement) Equal(o Replacement) bool {
	if r.IsTagged() != o.IsTagged() {
		return false
	}
	if !r.IsTagged() {
		return r.literal == o.literal
	}
	if len(r.forms) != len(o.forms) {
		return false
	}
	for tag, form := range r.forms {
		if of, ok := o.forms[tag]; !ok || of != form {
			return false
		}
	}
	return true
}

// MarshalJSON encodes a Literal as a JSON string and a Tagged table as an
// object.
func (r Replacement) MarshalJSON() ([]byte, error) {
	if r.IsTagged() {
		return json.Marshal(r.forms)
	}
	return json.Marshal(r.literal)
}

// UnmarshalJSON accepts either a JSON string or an object of strings.
func (r *Replacement) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.Wrap(ErrInvalidReplacement, "got null")
	}

	var literal string
	if err := json.Unmarshal(data, &literal); err == nil {
		*r = NewLiteral(literal)
		return nil
	}

	var forms map[string]string
	if err := json.Unmarshal(data, &forms); err != nil || forms == nil {
		return errors.Wrapf(ErrInvalidReplacement, "got %s", truncate(data, 40))
	}
	*r = Replacement{forms: forms}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
