// Package cache holds computed progression statuses so repeated reads skip
// the store and the evaluator.
package cache

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/abhisek/devpath/internal/progression"
)

var (
	// ErrMiss is returned when the requested key is not cached.
	ErrMiss = errors.New("cache: key not found")

	// ErrSerialization is returned when a cached value cannot be encoded or decoded.
	ErrSerialization = errors.New("cache: serialization failed")
)

// Key identifies one learner's status on one learning path.
type Key struct {
	LearnerID string
	Language  string
	Level     string
}

// String returns the namespaced cache key. The learner ID is escaped so it
// cannot run into the language segment.
func (k Key) String() string {
	return fmt.Sprintf("devpath:status:%s:%s:%s", url.QueryEscape(k.LearnerID), k.Language, k.Level)
}

// StatusCache stores computed statuses.
type StatusCache interface {
	// Get returns the cached status or ErrMiss.
	Get(ctx context.Context, key Key) (progression.Status, error)

	// Set stores a status.
	Set(ctx context.Context, key Key, status progression.Status) error

	// Invalidate drops a cached status. Missing keys are not an error.
	Invalidate(ctx context.Context, key Key) error

	// Close releases any connection held by the cache.
	Close() error
}

// Noop is a StatusCache that never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, Key) (progression.Status, error) {
	return progression.Status{}, ErrMiss
}
func (Noop) Set(context.Context, Key, progression.Status) error { return nil }
func (Noop) Invalidate(context.Context, Key) error { return nil }
func (Noop) Close() error { return nil }

// Memory is an in-process StatusCache.
type Memory struct {
	mu      sync.Mutex
	entries map[Key]progression.Status
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[Key]progression.Status)}
}

func (m *Memory) Get(_ context.Context, key Key) (progression.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.entries[key]
	if !ok {
		return progression.Status{}, ErrMiss
	}
	return s, nil
}

func (m *Memory) Set(_ context.Context, key Key, status progression.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = status
	return nil
}

func (m *Memory) Invalidate(_ context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *Memory) Close() error { return nil }

// Len returns the number of cached statuses.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
