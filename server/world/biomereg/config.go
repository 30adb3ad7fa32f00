package biomereg

import (
	"log/slog"

	"github.com/brentp/intintmap"
	"github.com/dm-vev/biomebridge/server/world/biome"
	"github.com/dm-vev/biomebridge/server/world/biome/registry"
	"github.com/dm-vev/biomebridge/server/world/biome/vanilla"
)

// Config holds the options of a Registrar. The zero value is usable; defaults
// are applied by New.
type Config struct {
	// Log is the Logger used for tracing registrations. If nil, slog.Default()
	// is used.
	Log *slog.Logger
	// Registry is the host registry biomes are registered in. If nil, an empty
	// registry.Memory is used.
	Registry registry.Registry
	// Allocator produces the registry keys of biomes. If nil, an allocator
	// that lets biomes override the built-in biomes in place is used.
	Allocator *biome.Allocator
	// Factory creates the records registered. If Factory.Log is nil, it is set
	// to Log.
	Factory biome.Factory
	// MaxID is the highest id the registry is sized for before the first
	// virtual registration. If 0 or lower, biome.MaxID is used.
	MaxID int
}

func (c Config) withDefaults() Config {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.Registry == nil {
		c.Registry = registry.NewMemory(0)
	}
	if c.Allocator == nil {
		c.Allocator = vanilla.Allocator()
	}
	if c.Factory.Log == nil {
		c.Factory.Log = c.Log
	}
	if c.MaxID <= 0 {
		c.MaxID = biome.MaxID
	}
	return c
}

// New creates a Registrar using the fields of c.
func (c Config) New() *Registrar {
	c = c.withDefaults()
	return &Registrar{
		conf:    c,
		log:     c.Log.With("subsystem", "biomereg"),
		slots:   make(map[int]*slot),
		aliases: intintmap.New(64, 0.6),
		metrics: NewMetrics(),
	}
}
