package store

import (
	"context"
	"errors"
	"fmt"
)

// memKV is an in-memory KeyValueStorage for tests. When failing is
// set, every operation errors, simulating unavailable storage.
type memKV struct {
	data    map[string]string
	failing bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, error) {
	if m.failing {
		return "", errors.New("storage unavailable")
	}
	v, ok := m.data[key]
	if !ok {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	if m.failing {
		return errors.New("storage unavailable")
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	if m.failing {
		return errors.New("storage unavailable")
	}
	delete(m.data, key)
	return nil
}

func (m *memKV) GetAll(_ context.Context) (map[string]string, error) {
	if m.failing {
		return nil, errors.New("storage unavailable")
	}
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}
