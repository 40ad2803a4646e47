package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// MemoryStore is an in-memory ReceiptStore with the same single-slot
// contract as FileStore.
type MemoryStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files: make(map[string][]byte),
	}
}

func (s *MemoryStore) Put(ctx context.Context, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read receipt: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = map[string][]byte{name: data}
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("receipt %q not found", name)
	}
	return data, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = make(map[string][]byte)
	return nil
}
