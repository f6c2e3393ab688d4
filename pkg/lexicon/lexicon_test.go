package lexicon

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() map[string]Replacement {
	return map[string]Replacement{
		"bad weather": NewLiteral("a sunny day"),
		"big red dog": NewLiteral("X"),
		"big red":     NewLiteral("Y"),
		"mouse":       NewTagged(map[string]string{"NN": "mice"}),
	}
}

func TestBuildTrie(t *testing.T) {
	l := Build(sample())

	assert.Equal(t, 4, l.Len())
	big, ok := l.LookupRoot("BIG")
	require.True(t, ok)
	assert.Equal(t, "big", big.Word())

	red, ok := big.Child("Red")
	require.True(t, ok)
	_, ok = red.Child("dog")
	assert.True(t, ok)

	_, ok = l.LookupRoot("red")
	assert.False(t, ok, "only root children gate a walk")
	_, ok = l.LookupRoot("")
	assert.False(t, ok)
}

func TestBuildIdempotent(t *testing.T) {
	entries := sample()
	l := Build(entries)
	before := l.Snapshot()
	rootLen := l.root.Len()

	l.Build(entries)

	assert.Equal(t, before, l.Snapshot())
	assert.Equal(t, rootLen, l.root.Len())
	big, _ := l.LookupRoot("big")
	assert.Equal(t, 1, big.Len())
}

func TestBuildSkipsBlankKeys(t *testing.T) {
	l := Build(map[string]Replacement{"   ": NewLiteral("x"), "dog": NewLiteral("hound")})
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 1, l.root.Len())
}

func TestInsert(t *testing.T) {
	l := Build(sample())

	assert.True(t, l.Insert("bad movie", NewLiteral("a fine film")))
	assert.Equal(t, 5, l.Len())

	bad, ok := l.LookupRoot("bad")
	require.True(t, ok)
	assert.Equal(t, 2, bad.Len(), "existing node is reused")

	r, ok := l.Get("bad movie")
	require.True(t, ok)
	assert.Equal(t, "a fine film", r.Literal())
}

func TestInsertDuplicateRejected(t *testing.T) {
	l := Build(sample())
	before := l.Snapshot()

	assert.False(t, l.Insert("bad weather", NewLiteral("rain")))
	assert.Equal(t, before, l.Snapshot())

	assert.False(t, l.Insert("", NewLiteral("x")))
	assert.False(t, l.Insert("  \t ", NewLiteral("x")))
	assert.Equal(t, 4, l.Len())
}

// Duplicate detection compares exact keys while matching folds case, so
// keys differing only in case coexist.
func TestInsertCaseAsymmetry(t *testing.T) {
	l := New()

	assert.True(t, l.Insert("Dog", NewLiteral("hound")))

	// before a lower-case key exists, a lower-cased lookup folds onto "Dog"
	r, ok := l.Get("dog")
	require.True(t, ok)
	assert.Equal(t, "hound", r.Literal())

	assert.True(t, l.Insert("dog", NewLiteral("puppy")))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"Dog", "dog"}, l.Keys())

	// the exact lower-case key wins for matching
	l.Read(func(v View) {
		r, ok := v.Resolve("dog")
		require.True(t, ok)
		assert.Equal(t, "puppy", r.Literal())

		r, ok = v.Entry("Dog")
		require.True(t, ok)
		assert.Equal(t, "hound", r.Literal())
	})

	assert.False(t, l.Insert("Dog", NewLiteral("mutt")))
	assert.Equal(t, 1, l.root.Len(), "both spellings share one trie path")
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	l := Build(sample())
	snap := l.Snapshot()
	snap["mouse"].forms["NN"] = "rats"
	delete(snap, "big red")

	r, ok := l.Get("mouse")
	require.True(t, ok)
	form, _ := r.Form("NN")
	assert.Equal(t, "mice", form)
	assert.Equal(t, 4, l.Len())
}

func TestConcurrentInsertAndRead(t *testing.T) {
	l := New()
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}

	var wg sync.WaitGroup
	for _, w := range words {
		wg.Add(2)
		go func(w string) {
			defer wg.Done()
			l.Insert(w+" one two", NewLiteral(w))
		}(w)
		go func(w string) {
			defer wg.Done()
			l.Read(func(v View) {
				// a visible path always has its key
				n, ok := v.LookupRoot(w)
				if !ok {
					return
				}
				one, ok := n.Child("one")
				require.True(t, ok)
				_, ok = one.Child("two")
				require.True(t, ok)
				assert.True(t, v.IsKey(w+" one two"))
			})
		}(w)
	}
	wg.Wait()
	assert.Equal(t, len(words), l.Len())
}

func TestReplacementJSON(t *testing.T) {
	in := map[string]Replacement{
		"bad weather": NewLiteral("a sunny day"),
		"mouse":       NewTagged(map[string]string{"NN": "mice", "NNS": "mice"}),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bad weather":"a sunny day","mouse":{"NN":"mice","NNS":"mice"}}`, string(data))

	var out map[string]Replacement
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out["mouse"].Equal(in["mouse"]))
	assert.True(t, out["bad weather"].Equal(in["bad weather"]))
	assert.False(t, out["mouse"].Equal(in["bad weather"]))
}

func TestReplacementJSONInvalid(t *testing.T) {
	for _, raw := range []string{`42`, `null`, `["a"]`, `{"NN": 3}`} {
		var r Replacement
		err := json.Unmarshal([]byte(raw), &r)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, ErrInvalidReplacement), raw)
	}
}

func TestReplacementString(t *testing.T) {
	assert.Equal(t, "hound", NewLiteral("hound").String())
	tagged := NewTagged(map[string]string{"NNS": "mice", "NN": "mouse"})
	assert.Equal(t, "NN=mouse, NNS=mice", tagged.String())
	assert.Nil(t, NewLiteral("x").Forms())
	assert.Equal(t, map[string]string{"NN": "mouse", "NNS": "mice"}, tagged.Forms())
}
