// Package store persists the wordbook. Every backend holds the whole
// dictionary: it is loaded once at start and rewritten in full on save.
package store

import (
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kittclouds/wordrighter/pkg/lexicon"
)

// Sentinel errors
var (
	// ErrNotFound is returned by Load when the backing wordbook does not exist
	ErrNotFound = errors.New("wordbook not found")
	// ErrUnknownBackend is returned by Open for an unsupported backend name
	ErrUnknownBackend = errors.New("unknown wordbook backend")
	// ErrClosed is returned by operations on a closed store
	ErrClosed = errors.New("store closed")
)

// Storer defines the interface for wordbook persistence.
// This allows swapping between MemStore (testing), JSONStore and SQLiteStore.
type Storer interface {
	// Load returns every entry of the persisted wordbook.
	Load() (map[string]lexicon.Replacement, error)
	// Save replaces the persisted wordbook with entries.
	Save(entries map[string]lexicon.Replacement) error
	// Close releases the backend.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	// Path is the JSON file or SQLite database; ignored by the memory backend.
	Path string
	// CreateIfMissing makes a missing JSON wordbook load as empty.
	CreateIfMissing bool
	// FS backs the JSON store; defaults to the OS filesystem.
	FS hackpadfs.FS
	Log *log.Entry
}

// Open creates the backend named by opts.Backend.
func Open(opts Options) (Storer, error) {
	if opts.Log == nil {
		opts.Log = log.NewEntry(log.StandardLogger())
	}
	entry := opts.Log.WithFields(log.Fields{"backend": opts.Backend, "path": opts.Path})

	switch strings.ToLower(opts.Backend) {
	case BackendJSON, "":
		fs := opts.FS
		if fs == nil {
			osfs, path, err := osFS(opts.Path)
			if err != nil {
				return nil, err
			}
			fs, opts.Path = osfs, path
		}
		return NewJSONStore(fs, opts.Path, opts.CreateIfMissing, entry), nil
	case BackendSQLite:
		return NewSQLiteStoreWithDSN(opts.Path)
	case BackendMemory:
		return NewMemStore(), nil
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", opts.Backend)
}

// copyEntries deep-copies a wordbook so callers can't alias store state.
func copyEntries(entries map[string]lexicon.Replacement) map[string]lexicon.Replacement {
	out := make(map[string]lexicon.Replacement, len(entries))
	for k, r := range entries {
		if r.IsTagged() {
			r = lexicon.NewTagged(r.Forms())
		}
		out[k] = r
	}
	return out
}
