package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/lo"

	"github.com/apostle2t/jobboard/internal/domain"
)

// Keys mirror the fixed names the web client used in localStorage.
const (
	keyToken     = "auth_token"
	keyBookmarks = "bookmarkedJobs"
	keyShared    = "sharedJob"
)

// Store is a durable JSON key-value mirror for client state that must
// survive restarts: the auth token, the bookmarked jobs list and a pending
// share record. Values are opaque JSON blobs keyed by fixed names.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: map[string]json.RawMessage{},
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local store: %w", err)
	}

	// A corrupt mirror must never take the app down: log and start empty.
	if err := json.Unmarshal(raw, &s.data); err != nil {
		slog.Error("local store is malformed, resetting", "path", path, "err", err)
		s.data = map[string]json.RawMessage{}
	}
	return s, nil
}

func (s *Store) Token() string {
	var token string
	s.get(keyToken, &token)
	return token
}

func (s *Store) SaveToken(token string) error {
	if token == "" {
		return s.delete(keyToken)
	}
	return s.set(keyToken, token)
}

func (s *Store) ClearToken() error {
	return s.delete(keyToken)
}

func (s *Store) Bookmarks() []domain.Job {
	var jobs []domain.Job
	s.get(keyBookmarks, &jobs)
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs
}

func (s *Store) AddBookmark(job domain.Job) error {
	jobs := s.Bookmarks()
	if lo.ContainsBy(jobs, func(j domain.Job) bool { return j.ID == job.ID }) {
		return nil
	}
	return s.set(keyBookmarks, append(jobs, job))
}

func (s *Store) RemoveBookmark(jobID string) error {
	jobs := lo.Reject(s.Bookmarks(), func(j domain.Job, _ int) bool {
		return j.ID == jobID
	})
	return s.set(keyBookmarks, jobs)
}

func (s *Store) ClearBookmarks() error {
	return s.delete(keyBookmarks)
}

func (s *Store) SavePendingShare(job domain.Job) error {
	return s.set(keyShared, job)
}

// TakePendingShare returns and removes the pending share record, if any.
func (s *Store) TakePendingShare() (domain.Job, bool) {
	var job domain.Job
	if !s.get(keyShared, &job) {
		return domain.Job{}, false
	}
	if err := s.delete(keyShared); err != nil {
		slog.Error("clear pending share failed", "err", err)
	}
	return job, true
}

// get decodes the value under key into v. A malformed value is logged,
// dropped and treated as absent.
func (s *Store) get(key string, v any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		slog.Error("local store value is malformed, dropping", "key", key, "err", err)
		delete(s.data, key)
		return false
	}
	return true
}

func (s *Store) set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flushLocked()
}

func (s *Store) delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flushLocked()
}

// flushLocked writes the whole mirror through a temp file and rename, so a
// crash mid-write never leaves a truncated store behind.
func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write local store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace local store: %w", err)
	}
	return nil
}
