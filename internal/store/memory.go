package store

import (
	"slices"
	"strings"
	"sync"
)

type memEntry struct {
	secret  []byte
	address string
}

// MemoryStore is an in-process Wallets implementation
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memEntry
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memEntry)}
}

func (s *MemoryStore) Get(alias string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[alias]
	if !ok || e.secret == nil {
		return nil, ErrNotFound
	}
	return slices.Clone(e.secret), nil
}

func (s *MemoryStore) Set(alias string, secret []byte) error {
	if err := ValidateAlias(alias); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[alias]; ok && e.secret != nil {
		return &ExistsError{Alias: alias}
	}
	s.entries[alias] = &memEntry{secret: slices.Clone(secret)}
	return nil
}

func (s *MemoryStore) Delete(alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[alias]
	if !ok {
		return ErrNotFound
	}
	clear(e.secret)
	delete(s.entries, alias)
	return nil
}

func (s *MemoryStore) Address(alias string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[alias]
	if !ok {
		return "", ErrNotFound
	}
	return e.address, nil
}

func (s *MemoryStore) SetAddress(alias, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[alias]
	if !ok {
		return ErrNotFound
	}
	e.address = address
	return nil
}

func (s *MemoryStore) List() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.entries))
	for alias, e := range s.entries {
		out = append(out, Entry{Alias: alias, Network: NetworkSui, Address: e.address})
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Alias, b.Alias) })
	return out, nil
}
