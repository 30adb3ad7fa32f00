package biome

import (
	"slices"

	"github.com/dm-vev/biomebridge/server/world/biome/spawn"
)

// Record is a finalised biome as installed into a biome registry. A Record is
// immutable once created by a Factory.
type Record struct {
	name   string
	ids    IDs
	props  Properties
	spawns [len(spawn.Categories)]spawn.List
	tinter Tinter
}

// Name returns the human-readable name of the biome.
func (r *Record) Name() string { return r.name }

// IDs returns the numeric identity the record was created with.
func (r *Record) IDs() IDs { return r.ids }

// Properties returns the climate and visual properties of the biome.
func (r *Record) Properties() Properties { return r.props }

// Temperature returns the (clamped) temperature of the biome.
func (r *Record) Temperature() float64 { return r.props.Temperature }

// Rainfall returns the rainfall of the biome.
func (r *Record) Rainfall() float64 { return r.props.Rainfall }

// SkyColour returns the configured sky colour. The temperature passed is
// ignored: the sky colour of configured biomes is fixed.
func (r *Record) SkyColour(float64) int { return r.props.SkyColour }

// Spawns returns a copy of the spawn list of category c.
func (r *Record) Spawns(c spawn.Category) spawn.List {
	if int(c) >= len(r.spawns) {
		return nil
	}
	return slices.Clone(r.spawns[c])
}

// String ...
func (r *Record) String() string {
	return "Record(" + r.name + ")"
}
