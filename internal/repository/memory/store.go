package memory

import (
	"context"
	"sync"

	"github.com/Guyuepp/sentence-chain/domain"
)

type store struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

var _ domain.Store = (*store)(nil)

// NewStore creates an in-process store. Its content is lost on restart.
func NewStore() *store {
	return &store{
		data: make(map[string]map[string][]byte),
	}
}

func (s *store) Get(_ context.Context, profile, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[profile][key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *store) Set(_ context.Context, profile, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.data[profile]
	if !ok {
		ns = make(map[string][]byte)
		s.data[profile] = ns
	}
	ns[key] = append([]byte(nil), value...)
	return nil
}

func (s *store) Del(_ context.Context, profile, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data[profile], key)
	return nil
}
