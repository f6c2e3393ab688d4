package lexicon

import (
	"sort"
	"strings"
	"sync"
)

// ============================================================================
// Phrase Trie
// ============================================================================

// Node is a phrase trie node. Its edge label is a lower-cased word; the root
// has an empty word. Whether a node ends a key is not stored: it is answered
// by looking the joined path up in the dictionary.
type Node struct {
	word     string
	children map[string]*Node
}

func newNode(word string) *Node {
	return &Node{word: word, children: make(map[string]*Node)}
}

// Word returns the lower-cased word on the edge into n.
func (n *Node) Word() string {
	return n.word
}

// Child returns the child of n labelled word, compared case-insensitively.
func (n *Node) Child(word string) (*Node, bool) {
	child, ok := n.children[strings.ToLower(word)]
	return child, ok
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// extend walks words from n creating missing nodes.
func (n *Node) extend(words []string) {
	parent := n
	for _, w := range words {
		child, ok := parent.children[w]
		if !ok {
			child = newNode(w)
			parent.children[w] = child
		}
		parent = child
	}
}

// ============================================================================
// Lexicon
// ============================================================================

// Lexicon is the dictionary of phrase keys and their replacements together
// with the trie over their lower-cased words. It is safe for concurrent use:
// mutations take the write lock, and Read runs a whole pass under the read
// lock so a half-inserted phrase is never visible.
type Lexicon struct {
	mu      sync.RWMutex
	entries map[string]Replacement
	// folded maps a lower-cased, space-normalized key to the first
	// inserted key with that folding.
	folded map[string]string
	root   *Node
	gen    uint64

	scanMu  sync.Mutex
	scanner *scanner
}

// New creates an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{
		entries: make(map[string]Replacement),
		folded:  make(map[string]string),
		root:    newNode(""),
	}
}

// Build creates a Lexicon holding entries.
func Build(entries map[string]Replacement) *Lexicon {
	l := New()
	l.Build(entries)
	return l
}

// Build adds entries to the dictionary and extends the trie for every key.
// Running it again with the same entries changes nothing. Keys with no
// words are skipped.
func (l *Lexicon) Build(entries map[string]Replacement) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// sorted so the folded index is deterministic
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		words := splitWords(key)
		if len(words) == 0 {
			continue
		}
		l.store(key, words, entries[key])
	}
	l.gen++
}

// store records key and extends the trie. Caller holds the write lock.
func (l *Lexicon) store(key string, words []string, r Replacement) {
	l.entries[key] = r
	fold := strings.Join(words, " ")
	if _, ok := l.folded[fold]; !ok {
		l.folded[fold] = key
	}
	l.root.extend(words)
}

// Insert registers phrase. It returns false without changing anything when
// phrase is blank or is already a key under its exact casing; keys that
// differ only in case are distinct.
func (l *Lexicon) Insert(phrase string, r Replacement) bool {
	words := splitWords(phrase)
	if len(words) == 0 {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.entries[phrase]; exists {
		return false
	}
	l.store(phrase, words, r)
	l.gen++
	return true
}

// LookupRoot returns the root child for word, compared case-insensitively.
// The node must only be traversed inside Read.
func (l *Lexicon) LookupRoot(word string) (*Node, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.root.Child(word)
}

// Get returns the replacement for phrase: the exact key if present,
// otherwise the key that phrase case-folds to.
func (l *Lexicon) Get(phrase string) (Replacement, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.view().Resolve(phrase)
}

// Len returns the number of keys.
func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Keys returns every key, sorted.
func (l *Lexicon) Keys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.entries))
	for k := range l.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a deep copy of the dictionary, consistent as of one
// instant, for persistence.
func (l *Lexicon) Snapshot() map[string]Replacement {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]Replacement, len(l.entries))
	for k, r := range l.entries {
		if r.IsTagged() {
			r = NewTagged(r.forms)
		}
		out[k] = r
	}
	return out
}

// Read runs fn against a view of the lexicon. The view is consistent for
// the duration of fn; inserts wait until fn returns. fn must not retain
// the view or call mutating methods.
func (l *Lexicon) Read(fn func(View)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.view())
}

func (l *Lexicon) view() View {
	return View{l: l}
}

// ============================================================================
// View
// ============================================================================

// View is read access to a Lexicon held under its read lock.
type View struct {
	l *Lexicon
}

// LookupRoot returns the root child for word, compared case-insensitively.
func (v View) LookupRoot(word string) (*Node, bool) {
	return v.l.root.Child(word)
}

// IsKey reports whether phrase resolves to a key.
func (v View) IsKey(phrase string) bool {
	_, ok := v.Resolve(phrase)
	return ok
}

// Resolve returns the replacement registered for phrase. The exact key is
// tried first, then the first-inserted key with the same lower-cased words.
func (v View) Resolve(phrase string) (Replacement, bool) {
	if r, ok := v.l.entries[phrase]; ok {
		return r, true
	}
	key, ok := v.l.folded[strings.Join(splitWords(phrase), " ")]
	if !ok {
		return Replacement{}, false
	}
	return v.l.entries[key], true
}

// Entry returns the replacement stored under exactly key.
func (v View) Entry(key string) (Replacement, bool) {
	r, ok := v.l.entries[key]
	return r, ok
}

// splitWords splits a phrase into lower-cased words.
func splitWords(phrase string) []string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}
