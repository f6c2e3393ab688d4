package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/wordrighter/internal/store"
)

// writeConfig lays out a config and a JSON wordbook in a temp dir.
func writeConfig(t *testing.T, wordbook string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	bookPath := filepath.Join(dir, "wordbook.json")
	if wordbook != "" {
		require.NoError(t, os.WriteFile(bookPath, []byte(wordbook), 0o644))
	}

	cfgPath := filepath.Join(dir, "wordrighter.yaml")
	cfg := "wordbook:\n  backend: json\n  path: " + bookPath + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	return cfgPath, bookPath
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCorrectArgs(t *testing.T) {
	cfgPath, _ := writeConfig(t, `{"bad weather": "a sunny day"}`)

	out, err := run(t, "", "--config", cfgPath, "correct", "the", "bad", "weather", "today")
	require.NoError(t, err)
	assert.Equal(t, "the a sunny day today\n", out)
}

func TestCorrectStdin(t *testing.T) {
	cfgPath, _ := writeConfig(t, `{"dog": "hound"}`)

	out, err := run(t, "The dogs barked.\nnothing here\n", "--config", cfgPath, "correct")
	require.NoError(t, err)
	assert.Equal(t, "The hounds barked.\nnothing here\n", out)
}

func TestReplSession(t *testing.T) {
	cfgPath, bookPath := writeConfig(t, "")

	input := "$standin dog : hound\nthe dog barked\nplain words\n$spare\n"
	out, err := run(t, input, "--config", cfgPath, "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "Taking dog as hound.")
	assert.Contains(t, out, "the hound barked")
	assert.NotContains(t, out, "plain words")
	assert.Contains(t, out, "New words spared.")

	saved, err := os.ReadFile(bookPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dog": "hound"}`, string(saved))
}

func TestWordbookMoves(t *testing.T) {
	cfgPath, bookPath := writeConfig(t, `{"bad weather": "a sunny day", "mouse": {"NN": "rat", "NNS": "rats"}}`)
	dir := filepath.Dir(bookPath)

	dbPath := filepath.Join(dir, "wordbook.db")
	out, err := run(t, "", "--config", cfgPath, "wordbook", "export", "--backend", "sqlite", "--path", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 2 entries")

	s, err := store.NewSQLiteStoreWithDSN(dbPath)
	require.NoError(t, err)
	exported, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.Len(t, exported, 2)

	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(other, []byte(`{"dog": "hound", "mouse": "cheese"}`), 0o644))
	out, err = run(t, "", "--config", cfgPath, "wordbook", "import", "--path", other)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 entries, 1 already present")

	out, err = run(t, "", "--config", cfgPath, "wordbook", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "dog"))
	assert.Contains(t, lines[2], "NN=rat, NNS=rats")
}

func TestImportRequiresPath(t *testing.T) {
	cfgPath, _ := writeConfig(t, `{}`)

	_, err := run(t, "", "--config", cfgPath, "wordbook", "import")
	assert.Error(t, err)
}

func TestMissingWordbookFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "wordrighter.yaml")
	cfg := "wordbook:\n  backend: json\n  path: " + filepath.Join(dir, "none.json") +
		"\n  create_if_missing: false\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, err := run(t, "", "--config", cfgPath, "correct", "hello")
	assert.Error(t, err)
}
