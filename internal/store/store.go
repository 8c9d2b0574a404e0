// Package store holds the in-memory collections the dashboard renders from.
// Each store owns one resource type, is replaced wholesale on fetch, and is
// patched locally after confirmed mutations so screens stay current without
// a full re-fetch.
package store

import "sync"

// Store is an ordered in-memory collection keyed by an injected identity
// function. Mutations notify subscribers after the write completes;
// last-response-wins, no cross-writer ordering beyond that.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	key   func(T) string
	subs  []func()
}

func New[T any](key func(T) string) *Store[T] {
	return &Store[T]{key: key}
}

// Subscribe registers fn to run after every mutation. Used to trigger
// re-renders; fn must not mutate the store.
func (s *Store[T]) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// ReplaceAll swaps the entire contents, as done after a full fetch.
func (s *Store[T]) ReplaceAll(items []T) {
	s.mu.Lock()
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.mu.Unlock()
	s.notify()
}

// Append adds the server-returned canonical entity after a confirmed create.
func (s *Store[T]) Append(item T) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	s.notify()
}

// Remove drops the entity with the given identity. Removing an absent
// identity is a no-op and reports false.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	removed := false
	kept := s.items[:0]
	for _, item := range s.items {
		if !removed && s.key(item) == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	s.mu.Unlock()
	if removed {
		s.notify()
	}
	return removed
}

// ReplaceOne swaps the entity with the given identity for the server copy,
// keeping its position. Reports false when no entity matched.
func (s *Store[T]) ReplaceOne(id string, item T) bool {
	s.mu.Lock()
	replaced := false
	for i := range s.items {
		if s.key(s.items[i]) == id {
			s.items[i] = item
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if replaced {
		s.notify()
	}
	return replaced
}

// Get returns the entity with the given identity, if present.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Items returns a snapshot copy in insertion order.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
