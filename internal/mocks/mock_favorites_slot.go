package mocks

import (
	"context"
	"sync"

	"github.com/metinatakli/malapronta/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockFavoritesSlot struct {
	mock.Mock
}

func (m *MockFavoritesSlot) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockFavoritesSlot) Set(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}

// InMemoryFavoritesSlot behaves like a real slot that survives store
// instances, which lets tests simulate a process restart.
type InMemoryFavoritesSlot struct {
	mu       sync.Mutex
	payloads map[string][]byte
}

func NewInMemoryFavoritesSlot() *InMemoryFavoritesSlot {
	return &InMemoryFavoritesSlot{payloads: make(map[string][]byte)}
}

func (m *InMemoryFavoritesSlot) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	payload, ok := m.payloads[key]
	if !ok {
		return nil, domain.ErrSlotEmpty
	}

	return append([]byte(nil), payload...), nil
}

func (m *InMemoryFavoritesSlot) Set(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payloads[key] = append([]byte(nil), payload...)

	return nil
}

// Put stores a raw payload, for seeding corrupt or legacy data.
func (m *InMemoryFavoritesSlot) Put(key string, payload string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payloads[key] = []byte(payload)
}
