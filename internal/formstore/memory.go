package formstore

import (
	"context"
	"sync"

	"github.com/iwvelando/lease-fees/pkg/fees"
)

// MemoryStore keeps form state for the life of the process. States are held
// encoded so callers never share slices with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[fees.Kind][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[fees.Kind][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, kind fees.Kind) (FormState, error) {
	if err := checkKind(kind); err != nil {
		return FormState{}, err
	}

	s.mu.RLock()
	payload, ok := s.data[kind]
	s.mu.RUnlock()
	if !ok {
		return FormState{}, ErrNotFound
	}
	return decode(payload)
}

func (s *MemoryStore) Save(_ context.Context, state FormState) (FormState, error) {
	state, payload, err := prepare(state, now())
	if err != nil {
		return FormState{}, err
	}

	s.mu.Lock()
	s.data[state.Calculator] = payload
	s.mu.Unlock()
	return state, nil
}

func (s *MemoryStore) Delete(_ context.Context, kind fees.Kind) error {
	if err := checkKind(kind); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.data, kind)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
