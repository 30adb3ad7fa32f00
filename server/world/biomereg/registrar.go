package biomereg

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/brentp/intintmap"
	"github.com/dm-vev/biomebridge/server/world/biome/registry"
	"github.com/google/uuid"
)

// Registrar registers configured biomes in a host registry, one world load at
// a time. A single Registrar should be used per host registry: it tracks the
// saved id slots shared by real and virtual biomes, and whether the registry
// was sized during the current world load.
type Registrar struct {
	conf    Config
	log     *slog.Logger
	metrics *Metrics

	mu      sync.Mutex
	sized   bool
	slots   map[int]*slot
	aliases *intintmap.Map
}

// Load starts registering the biomes of a world. main specifies if the world
// is the main world: only the main world replaces biomes that are already
// registered under the same key, other worlds reuse them.
func (r *Registrar) Load(main bool) *Session {
	id := uuid.New()
	r.log.Debug("world load started", "session", id, "main", main)
	return &Session{
		id:   id,
		main: main,
		r:    r,
		log:  r.log.With("session", id.String()),
	}
}

// Unload forgets the slots tracked for the current world and resets the
// registry sizing, so that the next world load sizes the registry again.
// Records stay registered in the host registry.
func (r *Registrar) Unload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sized = false
	r.slots = make(map[int]*slot)
	r.aliases = intintmap.New(64, 0.6)
	r.log.Debug("world unloaded")
}

// Registry returns the host registry biomes are registered in.
func (r *Registrar) Registry() registry.Registry {
	return r.conf.Registry
}

// Metrics returns the registration counters of the Registrar.
func (r *Registrar) Metrics() *Metrics {
	return r.metrics
}

// Slot returns the state of the saved id passed.
func (r *Registrar) Slot(savedID int) SlotState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[savedID]; ok {
		return s.state
	}
	return Unbound
}

// SavedID returns the id that a biome generated as generationID is saved as.
// Ids of biomes that are not virtual are returned unchanged.
func (r *Registrar) SavedID(generationID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if saved, ok := r.aliases.Get(int64(generationID)); ok {
		return int(saved)
	}
	return generationID
}

// slotLocked returns the slot of savedID, creating it if needed. r.mu must be
// held.
func (r *Registrar) slotLocked(savedID int) *slot {
	s, ok := r.slots[savedID]
	if !ok {
		s = &slot{id: savedID}
		r.slots[savedID] = s
	}
	return s
}

// ensureCapacityLocked sizes the registry for the highest id once per world
// load. Some host registries copy sparse high ids incorrectly when their id
// table grows, so this must happen before any virtual biome is registered.
// r.mu must be held.
func (r *Registrar) ensureCapacityLocked() error {
	if r.sized {
		return nil
	}
	if err := r.conf.Registry.EnsureCapacity(r.conf.MaxID); err != nil {
		return fmt.Errorf("size registry for id %d: %w", r.conf.MaxID, err)
	}
	r.sized = true
	return nil
}
