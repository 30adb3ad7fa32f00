package registry

import (
	"maps"
	"slices"
	"sync"

	"github.com/dm-vev/biomebridge/server/world/biome"
)

// Memory is an in-memory Registry with the semantics of the host biome
// registry: registering an id replaces the record it maps to, while records
// previously registered under that id keep resolving to it. The zero value is
// not usable; use NewMemory.
type Memory struct {
	maxID int

	mu      sync.RWMutex
	ids     []*biome.Record
	keys    map[biome.Key]*biome.Record
	inverse map[*biome.Record]biome.Key
	reverse map[*biome.Record]int
	resizes int
}

// NewMemory creates an empty Memory that accepts ids up to and including
// maxID. If maxID is 0 or lower, biome.MaxID is used.
func NewMemory(maxID int) *Memory {
	if maxID <= 0 {
		maxID = biome.MaxID
	}
	return &Memory{
		maxID:   maxID,
		keys:    make(map[biome.Key]*biome.Record),
		inverse: make(map[*biome.Record]biome.Key),
		reverse: make(map[*biome.Record]int),
	}
}

// ByKey ...
func (m *Memory) ByKey(key biome.Key) (*biome.Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.keys[key]
	return r, ok
}

// ByID ...
func (m *Memory) ByID(id int) (*biome.Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id < 0 || id >= len(m.ids) || m.ids[id] == nil {
		return nil, false
	}
	return m.ids[id], true
}

// IDOf ...
func (m *Memory) IDOf(r *biome.Record) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.reverse[r]
	return id, ok
}

// KeyOf ...
func (m *Memory) KeyOf(r *biome.Record) (biome.Key, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	k, ok := m.inverse[r]
	return k, ok
}

// Register ...
func (m *Memory) Register(id int, key biome.Key, r *biome.Record) error {
	if r == nil {
		return Reject("register", key, id, ErrNilRecord)
	}
	if id < 0 || id > m.maxID {
		return Reject("register", key, id, ErrInvalidID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.keys[key]; ok && prev != r {
		return Reject("register", key, id, ErrKeyTaken)
	}
	m.growLocked(id)
	m.ids[id] = r
	m.keys[key] = r
	m.inverse[r] = key
	m.reverse[r] = id
	return nil
}

// Unregister removes the record bound to key along with every id mapping
// pointing to it.
func (m *Memory) Unregister(key biome.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.keys[key]
	if !ok {
		return Reject("unregister", key, -1, ErrUnknownKey)
	}
	delete(m.keys, key)
	if m.inverse[r] == key {
		delete(m.inverse, r)
	}
	for i, other := range m.ids {
		if other == r {
			m.ids[i] = nil
		}
	}
	delete(m.reverse, r)
	return nil
}

// EnsureCapacity grows the id table so that maxIndex fits without a later
// resize.
func (m *Memory) EnsureCapacity(maxIndex int) error {
	if maxIndex < 0 || maxIndex > m.maxID {
		return Reject("ensure capacity", biome.Key{}, maxIndex, ErrInvalidID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.growLocked(maxIndex)
	return nil
}

// growLocked makes room for id in the id table. m.mu must be held.
func (m *Memory) growLocked(id int) {
	if id < len(m.ids) {
		return
	}
	m.ids = slices.Grow(m.ids, id+1-len(m.ids))[:id+1]
	m.resizes++
}

// Resizes returns how many times the id table had to grow.
func (m *Memory) Resizes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resizes
}

// Len returns the number of keys registered.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}

// All returns a copy of all records registered, by key.
func (m *Memory) All() map[biome.Key]*biome.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.keys)
}

// Compile time check to make sure Memory implements Registry.
var _ Registry = (*Memory)(nil)
