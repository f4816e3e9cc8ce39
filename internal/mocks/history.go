package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/phrazzld/creatortune-gateway/internal/history"
)

// MockHistoryStore implements history.Store in memory for testing.
type MockHistoryStore struct {
	SaveFn  func(ctx context.Context, url string, data json.RawMessage) (history.Item, error)
	ListFn  func(ctx context.Context) ([]history.Item, error)
	ClearFn func(ctx context.Context) error

	mu    sync.Mutex
	items []history.Item
	saved int
}

// Save implements the history.Store interface
func (m *MockHistoryStore) Save(ctx context.Context, url string, data json.RawMessage) (history.Item, error) {
	m.mu.Lock()
	m.saved++
	m.mu.Unlock()

	if m.SaveFn != nil {
		return m.SaveFn(ctx, url, data)
	}

	item := history.NewItem(url, data, time.Now())
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]history.Item{item}, m.items...)
	return item, nil
}

// List implements the history.Store interface
func (m *MockHistoryStore) List(ctx context.Context) ([]history.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]history.Item(nil), m.items...), nil
}

// Clear implements the history.Store interface
func (m *MockHistoryStore) Clear(ctx context.Context) error {
	if m.ClearFn != nil {
		return m.ClearFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}

// SaveCalls returns how many times Save was called.
func (m *MockHistoryStore) SaveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved
}
