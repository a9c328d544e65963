package secrets

import (
	"sync"

	"github.com/pkg/errors"
)

// Memory is a Storage that lives only as long as the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Get(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", errors.Wrap(ErrKeyNotFound, key)
	}
	return value, nil
}

func (m *Memory) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]string)
	return nil
}

func (m *Memory) Persistent() bool {
	return false
}

func (m *Memory) Close() error {
	return nil
}
