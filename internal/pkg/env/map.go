// Package env holds ENV variables, loaded from the OS and ".env" files.
package env

import (
	"fmt"
	"maps"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

// Provider is read-only interface to get ENV value.
type Provider interface {
	Lookup(key string) (string, bool)
	Get(key string) string
}

// Map - abstraction for ENV variables.
// Keys are represented as uppercase string.
type Map struct {
	data map[string]string
	lock *sync.RWMutex
}

func Empty() *Map {
	return &Map{
		data: make(map[string]string),
		lock: &sync.RWMutex{},
	}
}

func FromMap(data map[string]string) *Map {
	m := Empty()
	for k, v := range data {
		m.Set(k, v)
	}
	return m
}

func FromOs() *Map {
	m := Empty()
	for _, pair := range os.Environ() {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 {
			m.Set(parts[0], parts[1])
		}
	}
	return m
}

func (m *Map) ToString() (string, error) {
	return godotenv.Marshal(m.ToMap())
}

func (m *Map) ToSlice() []string {
	out := make([]string, 0, len(m.data))
	for _, k := range m.Keys() {
		out = append(out, fmt.Sprintf(`%s=%s`, k, m.Get(k)))
	}
	return out
}

func (m *Map) ToMap() map[string]string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	data := make(map[string]string)
	maps.Copy(data, m.data)
	return data
}

func (m *Map) Keys() []string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Map) Lookup(key string) (string, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	value, found := m.data[strings.ToUpper(key)]
	return value, found
}

func (m *Map) Get(key string) string {
	value, _ := m.Lookup(key)
	return value
}

func (m *Map) GetOrErr(key string) (string, error) {
	value := m.Get(key)
	if len(value) == 0 {
		return "", errors.Errorf("missing ENV variable \"%s\"", strings.ToUpper(key))
	}
	return value, nil
}

func (m *Map) Set(key, value string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.data[strings.ToUpper(key)] = value
}

// Merge keys from an env.Map.
func (m *Map) Merge(data *Map, overwrite bool) {
	for k, v := range data.ToMap() {
		if _, found := m.Lookup(k); found && !overwrite {
			continue
		}
		m.Set(k, v)
	}
}
