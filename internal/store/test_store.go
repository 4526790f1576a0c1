package store

import (
	"context"
	"sync"
)

// TestStore is an in-memory Store used in tests.
type TestStore struct {
	mutex sync.RWMutex
	data  map[string][]byte

	// when set, Set returns this error
	SetErr error
}

func NewTestStore() *TestStore {
	return &TestStore{
		data: make(map[string][]byte),
	}
}

func (ts *TestStore) Get(_ context.Context, key string) ([]byte, error) {
	ts.mutex.RLock()
	defer ts.mutex.RUnlock()
	blob, ok := ts.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return blob, nil
}

func (ts *TestStore) Set(_ context.Context, key string, blob []byte) error {
	if ts.SetErr != nil {
		return ts.SetErr
	}
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	ts.data[key] = blob
	return nil
}

func (ts *TestStore) Seed(key string, blob []byte) {
	ts.mutex.Lock()
	defer ts.mutex.Unlock()
	ts.data[key] = blob
}
