package biomereg

import (
	"fmt"

	"github.com/dm-vev/biomebridge/server/world/biome"
	"github.com/dm-vev/biomebridge/server/world/biome/registry"
)

// SlotState is the state of a saved id shared by a real biome and any number
// of virtual aliases.
type SlotState uint8

const (
	// Unbound slots have no real biome yet. Virtual biomes registered in this
	// state are indexed under their generation id only and wait for the real
	// biome.
	Unbound SlotState = iota
	// RealOnly slots resolve to their real biome, without virtual aliases.
	RealOnly
	// RealWithVirtualAlias slots resolve to their real biome, while one or
	// more virtual biomes resolve back to the saved id as well.
	RealWithVirtualAlias
)

// String ...
func (s SlotState) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case RealOnly:
		return "real"
	case RealWithVirtualAlias:
		return "real+virtual"
	}
	return fmt.Sprintf("SlotState(%d)", uint8(s))
}

type entry struct {
	key biome.Key
	r   *biome.Record
}

// slot tracks a saved id. Its transitions perform the registry mutations that
// keep id -> biome resolving to the real biome, while biome -> id resolves to
// the saved id for the real biome and every virtual alias.
type slot struct {
	id      int
	state   SlotState
	real    entry
	aliases []entry
	pending []entry
}

// adopt binds a real biome that was registered in reg by someone else. It
// returns false if reg holds no biome under the saved id.
func (s *slot) adopt(reg registry.Registry) (bool, error) {
	if s.state != Unbound {
		return true, nil
	}
	r, ok := reg.ByID(s.id)
	if !ok {
		return false, nil
	}
	key, ok := reg.KeyOf(r)
	if !ok {
		return false, registry.Reject("resolve", key, s.id, registry.ErrUnknownKey)
	}
	s.real, s.state = entry{key: key, r: r}, RealOnly
	return true, nil
}

// bindReal registers e as the real biome of the slot and completes the
// aliases of virtual biomes that were waiting for it.
func (s *slot) bindReal(reg registry.Registry, e entry) error {
	if err := reg.Register(s.id, e.key, e.r); err != nil {
		return registry.Reject("register", e.key, s.id, err)
	}
	s.real = e
	if s.state == Unbound {
		s.state = RealOnly
	}
	pending := s.pending
	s.pending = nil
	for _, a := range pending {
		if err := s.alias(reg, a); err != nil {
			return err
		}
	}
	return nil
}

// addVirtual registers e, a virtual biome generated as generationID. If the
// slot has no real biome yet, e is only indexed under generationID and
// aliased once the real biome is bound.
func (s *slot) addVirtual(reg registry.Registry, generationID int, e entry) (aliased bool, err error) {
	if err := reg.Register(generationID, e.key, e.r); err != nil {
		return false, registry.Reject("register", e.key, generationID, err)
	}
	bound, err := s.adopt(reg)
	if err != nil {
		return false, err
	}
	if !bound {
		s.pending = append(s.pending, e)
		return false, nil
	}
	return true, s.alias(reg, e)
}

// alias makes e resolve to the saved id, then re-affirms the real biome so
// that the saved id keeps resolving to it.
func (s *slot) alias(reg registry.Registry, e entry) error {
	if err := reg.Register(s.id, e.key, e.r); err != nil {
		return registry.Reject("register", e.key, s.id, err)
	}
	if err := reg.Register(s.id, s.real.key, s.real.r); err != nil {
		return registry.Reject("register", s.real.key, s.id, err)
	}
	s.aliases = append(s.aliases, e)
	s.state = RealWithVirtualAlias
	return nil
}
