package testutil

import (
	"context"
	"io"
	"sync"
)

// MemoryStorage is an in-memory storage.Storage with switchable failures.
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte

	SaveErr   error
	DeleteErr error

	Saves   int
	Deletes int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

func (s *MemoryStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[path] = data
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Deletes++
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.objects, path)
	return nil
}

func (s *MemoryStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/files/" + path, nil
}

// Put stores an object directly, bypassing the counters.
func (s *MemoryStorage) Put(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = data
}

func (s *MemoryStorage) Has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok
}

func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
