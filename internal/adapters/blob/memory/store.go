package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"animal-rescue/internal/ports/blob"
)

type object struct {
	data        []byte
	contentType string
}

// Store guarda blobs en memoria (modo dev / tests).
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
}

func NewStore() *Store {
	return &Store{objects: make(map[string]object)}
}

var _ blob.Store = (*Store)(nil)

func (s *Store) Put(ctx context.Context, key string, r io.Reader, contentType string) (blob.Info, error) {
	if strings.TrimSpace(key) == "" {
		return blob.Info{}, fmt.Errorf("blob key required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return blob.Info{}, fmt.Errorf("read blob %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[key]; exists {
		return blob.Info{}, fmt.Errorf("blob %s already exists", key)
	}
	s.objects[key] = object{data: data, contentType: contentType}
	return blob.Info{Key: key, Size: int64(len(data)), ContentType: contentType}, nil
}

func (s *Store) Get(ctx context.Context, key string) (blob.Info, io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return blob.Info{}, nil, blob.ErrNotFound
	}
	info := blob.Info{Key: key, Size: int64(len(obj.data)), ContentType: obj.contentType}
	return info, io.NopCloser(bytes.NewReader(obj.data)), nil
}
