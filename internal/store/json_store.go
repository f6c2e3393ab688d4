package store

import (
	"encoding/json"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kittclouds/wordrighter/pkg/lexicon"
)

// JSONStore keeps the wordbook as one JSON document mapping each phrase to
// a string (Literal) or an object of tag -> form (Tagged).
type JSONStore struct {
	mu              sync.Mutex
	fs              hackpadfs.FS
	path            string
	createIfMissing bool
	log             *log.Entry
}

// NewJSONStore creates a store for the document at path on fs. Paths follow
// io/fs rules: slash separated, unrooted.
func NewJSONStore(fs hackpadfs.FS, path string, createIfMissing bool, entry *log.Entry) *JSONStore {
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}
	return &JSONStore{fs: fs, path: path, createIfMissing: createIfMissing, log: entry}
}

// Load reads the document. A missing document is ErrNotFound, or an empty
// wordbook that is written out immediately when createIfMissing is set.
func (s *JSONStore) Load() (map[string]lexicon.Replacement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := hackpadfs.ReadFile(s.fs, s.path)
	if errors.Is(err, hackpadfs.ErrNotExist) {
		if !s.createIfMissing {
			return nil, errors.Wrapf(ErrNotFound, "read %s", s.path)
		}
		s.log.Info("wordbook missing, starting empty")
		entries := map[string]lexicon.Replacement{}
		if err := s.write(entries); err != nil {
			return nil, err
		}
		return entries, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.path)
	}

	entries := map[string]lexicon.Replacement{}
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.path)
	}
	s.log.WithField("entries", len(entries)).Debug("wordbook loaded")
	return entries, nil
}

// Save rewrites the document. It is written beside the target and renamed
// over it so a failed write leaves the previous wordbook intact.
func (s *JSONStore) Save(entries map[string]lexicon.Replacement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(entries)
}

func (s *JSONStore) write(entries map[string]lexicon.Replacement) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode wordbook")
	}

	if dir := path.Dir(s.path); dir != "." {
		if err := hackpadfs.MkdirAll(s.fs, dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	tmp := s.path + ".tmp"
	if err := hackpadfs.WriteFullFile(s.fs, tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := hackpadfs.Rename(s.fs, tmp, s.path); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	s.log.WithField("entries", len(entries)).Debug("wordbook saved")
	return nil
}

// Close is a no-op for JSONStore.
func (s *JSONStore) Close() error {
	return nil
}

// osFS returns the OS filesystem and the io/fs form of an OS path.
func osFS(osPath string) (hackpadfs.FS, string, error) {
	abs, err := filepath.Abs(osPath)
	if err != nil {
		return nil, "", errors.Wrapf(err, "resolve %s", osPath)
	}
	return osfs.NewFS(), strings.TrimPrefix(filepath.ToSlash(abs), "/"), nil
}
