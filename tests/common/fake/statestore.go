//go:build unit

// Package fake provides in-memory sidecar collaborators for unit tests.
package fake

import (
	"context"
	"strconv"
	"sync"
)

type record struct {
	data    []byte
	version int64
}

// StateStore is an in-memory StateStore with real optimistic concurrency:
// versions increment on every successful write and a mismatched etag makes
// TrySet return false. FailNextWrites forces conflicts to exercise retry
// loops.
type StateStore struct {
	mu      sync.Mutex
	records map[string]record

	// remaining forced conflicts, consumed one per TrySet
	forcedConflicts int

	// BeforeWrite, when set, runs inside every TrySet before the version
	// check. Tests use it to interleave a competing write.
	BeforeWrite func()
}

func NewStateStore() *StateStore {
	return &StateStore{records: map[string]record{}}
}

func (s *StateStore) Get(_ context.Context, key string) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return nil, "", nil
	}

	data := make([]byte, len(rec.data))
	copy(data, rec.data)
	return data, strconv.FormatInt(rec.version, 10), nil
}

func (s *StateStore) TrySet(_ context.Context, key string, value []byte, etag string) (bool, error) {
	if s.BeforeWrite != nil {
		s.BeforeWrite()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.forcedConflicts > 0 {
		s.forcedConflicts--
		return false, nil
	}

	var expected int64
	if etag != "" {
		var err error
		expected, err = strconv.ParseInt(etag, 10, 64)
		if err != nil {
			return false, err
		}
	}

	rec, exists := s.records[key]
	if !exists {
		if expected != 0 {
			return false, nil
		}
		s.records[key] = record{data: append([]byte(nil), value...), version: 1}
		return true, nil
	}

	if rec.version != expected {
		return false, nil
	}

	s.records[key] = record{data: append([]byte(nil), value...), version: rec.version + 1}
	return true, nil
}

// FailNextWrites forces the next n TrySet calls to report a conflict.
func (s *StateStore) FailNextWrites(n int) {
	s.mu.Lock()
	s.forcedConflicts = n
	s.mu.Unlock()
}

// Version returns the current version of a key, 0 when absent.
func (s *StateStore) Version(key string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[key].version
}
