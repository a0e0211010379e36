package services

import (
	"context"
	"errors"

	"github.com/himanshuu932/rakshak/internal/models"
)

// mockStore is an in-memory KVStoreInterface with per-key failure
// injection for the fan-out write tests.
type mockStore struct {
	data     map[string]string
	failPut  map[string]bool
	failGet  bool
	putCalls []string
}

func newMockStore() *mockStore {
	return &mockStore{
		data:    make(map[string]string),
		failPut: make(map[string]bool),
	}
}

func (m *mockStore) Close() error { return nil }

func (m *mockStore) Put(key, value string) error {
	m.putCalls = append(m.putCalls, key)
	if m.failPut[key] {
		return errors.New("disk full")
	}
	m.data[key] = value
	return nil
}

func (m *mockStore) Get(key string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("io error")
	}
	value, found := m.data[key]
	return value, found, nil
}

func (m *mockStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

// mockReplier records reply requests and signals a channel so tests can
// wait for the detached reply goroutine.
type mockReplier struct {
	calls chan string
}

func newMockReplier() *mockReplier {
	return &mockReplier{calls: make(chan string, 4)}
}

func (m *mockReplier) SendCurrentLocation(ctx context.Context, recipient string) {
	m.calls <- recipient
}

// mockNotifier captures published events.
type mockNotifier struct {
	events []models.LocationEvent
}

func (m *mockNotifier) Publish(ev models.LocationEvent) {
	m.events = append(m.events, ev)
}
