package biomereg

import (
	"sync"
)

// SlotMetrics holds the counters of a single saved id.
type SlotMetrics struct {
	Registered uint64
	Overridden uint64
	Reused     uint64
	Aliased    uint64
	Rejected   uint64
}

// Metrics tracks per saved id counters of registration outcomes.
type Metrics struct {
	mu    sync.Mutex
	slots map[int]SlotMetrics
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{slots: make(map[int]SlotMetrics)}
}

func (m *Metrics) update(id int, f func(*SlotMetrics)) {
	if m == nil {
		return
	}
	m.mu.Lock()
	s := m.slots[id]
	f(&s)
	m.slots[id] = s
	m.mu.Unlock()
}

// IncRegistered increments the counter of biomes registered as the real biome
// of id.
func (m *Metrics) IncRegistered(id int) { m.update(id, func(s *SlotMetrics) { s.Registered++ }) }

// IncOverridden increments the counter of records under id replaced by the
// main world.
func (m *Metrics) IncOverridden(id int) { m.update(id, func(s *SlotMetrics) { s.Overridden++ }) }

// IncReused increments the counter of registrations that reused an existing
// record.
func (m *Metrics) IncReused(id int) { m.update(id, func(s *SlotMetrics) { s.Reused++ }) }

// IncAliased increments the counter of virtual biomes aliased to id.
func (m *Metrics) IncAliased(id int) { m.update(id, func(s *SlotMetrics) { s.Aliased++ }) }

// IncRejected increments the counter of failed registrations for id.
func (m *Metrics) IncRejected(id int) { m.update(id, func(s *SlotMetrics) { s.Rejected++ }) }

// Slot returns the counters of id.
func (m *Metrics) Slot(id int) SlotMetrics {
	if m == nil {
		return SlotMetrics{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[id]
}

// Total returns the sum of the counters of all ids.
func (m *Metrics) Total() SlotMetrics {
	if m == nil {
		return SlotMetrics{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var total SlotMetrics
	for _, s := range m.slots {
		total.Registered += s.Registered
		total.Overridden += s.Overridden
		total.Reused += s.Reused
		total.Aliased += s.Aliased
		total.Rejected += s.Rejected
	}
	return total
}
