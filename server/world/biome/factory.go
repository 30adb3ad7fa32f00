package biome

import (
	"log/slog"

	"github.com/dm-vev/biomebridge/server/world/biome/spawn"
)

// Factory creates biome records from configuration.
type Factory struct {
	// Log is used to report spawn entries that were pruned while merging. If
	// nil, slog.Default() is used.
	Log *slog.Logger
	// Tinter computes the grass and foliage colours of biomes without a fixed
	// colour override. If nil, NopTinter is used.
	Tinter Tinter
}

// New creates the Record described by conf. If existing is non-nil, its spawn
// lists are treated as the defaults the host installed for the biome and are
// merged with the configured spawn lists using spawn.Merge.
func (f Factory) New(conf Config, existing *Record) *Record {
	log := f.Log
	if log == nil {
		log = slog.Default()
	}
	r := &Record{
		name:   conf.Name,
		ids:    conf.IDs,
		props:  PropertiesOf(conf),
		tinter: f.Tinter,
	}
	if r.tinter == nil {
		r.tinter = NopTinter{}
	}
	for _, c := range spawn.Categories {
		var defaults spawn.List
		if existing != nil {
			defaults = existing.spawns[c]
		}
		merged, dropped := spawn.MergeDropped(defaults, conf.Spawns[c])
		for _, e := range dropped {
			log.Debug("pruned disabled spawn entry", "biome", conf.Name, "category", c.String(), "entry", e.String())
		}
		r.spawns[c] = merged
	}
	return r
}
