package biomereg

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dm-vev/biomebridge/server/world/biome"
	"github.com/dm-vev/biomebridge/server/world/biome/registry"
	"github.com/google/uuid"
)

// Session registers the biomes of a single world load.
type Session struct {
	id   uuid.UUID
	main bool
	r    *Registrar
	log  *slog.Logger
}

// ID returns the unique id of the session, used to correlate log records.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Main reports if the session loads the main world.
func (s *Session) Main() bool {
	return s.main
}

// Register finds or registers the biome described by conf and returns the
// record the registry holds for it.
//
// If a record is already registered under the key of the biome, it is
// returned as is unless the session loads the main world, in which case the
// record is unregistered and replaced. Its spawn lists are merged into the new
// record as defaults. Errors are returned without retrying: registry mutations
// that already happened are not rolled back.
func (s *Session) Register(conf biome.Config) (*biome.Record, error) {
	r := s.r
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := conf.IDs
	reg := r.conf.Registry
	key, err := r.conf.Allocator.Key(ids.GenerationID(), conf.Name)
	if err != nil {
		r.metrics.IncRejected(ids.SavedID())
		return nil, err
	}

	existing, found := reg.ByKey(key)
	if found {
		if !s.Main() {
			r.metrics.IncReused(ids.SavedID())
			s.log.Debug("reusing registered biome", "name", conf.Name, "key", key.String())
			return existing, nil
		}
		if err := reg.Unregister(key); err != nil {
			r.metrics.IncRejected(ids.SavedID())
			return nil, fmt.Errorf("biome %q: %w", conf.Name, registry.Reject("unregister", key, ids.SavedID(), err))
		}
		r.metrics.IncOverridden(ids.SavedID())
	}

	rec := r.conf.Factory.New(conf, existing)
	if err := r.ensureCapacityLocked(); err != nil {
		r.metrics.IncRejected(ids.SavedID())
		return nil, fmt.Errorf("biome %q: %w", conf.Name, err)
	}

	sl := r.slotLocked(ids.SavedID())
	e := entry{key: key, r: rec}
	if !ids.Virtual() {
		r.aliases.Del(int64(ids.SavedID()))
		if err := sl.bindReal(reg, e); err != nil {
			r.metrics.IncRejected(ids.SavedID())
			return nil, fmt.Errorf("biome %q: %w", conf.Name, err)
		}
		r.metrics.IncRegistered(ids.SavedID())
	} else {
		r.aliases.Put(int64(ids.GenerationID()), int64(ids.SavedID()))
		aliased, err := sl.addVirtual(reg, ids.GenerationID(), e)
		if err != nil {
			r.metrics.IncRejected(ids.SavedID())
			return nil, fmt.Errorf("biome %q: %w", conf.Name, err)
		}
		if aliased {
			r.metrics.IncAliased(ids.SavedID())
		}
	}
	s.log.Debug("registered biome", "name", conf.Name, "key", key.String(), "saved_id", ids.SavedID(), "generation_id", ids.GenerationID(), "slot", sl.state.String())
	return rec, nil
}

// RegisterAll registers every biome in confs in order. A biome that fails to
// register is skipped, and its error is joined into the error returned. The
// records returned are those of the biomes registered successfully.
func (s *Session) RegisterAll(confs []biome.Config) ([]*biome.Record, error) {
	records := make([]*biome.Record, 0, len(confs))
	var errs []error
	for _, conf := range confs {
		rec, err := s.Register(conf)
		if err != nil {
			s.log.Error("biome registration failed", "name", conf.Name, "err", err)
			errs = append(errs, err)
			continue
		}
		records = append(records, rec)
	}
	return records, errors.Join(errs...)
}
