package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/dm-vev/biomebridge/server/world/biome"
	"github.com/dm-vev/biomebridge/server/world/biome/spawn"
	"github.com/dm-vev/biomebridge/server/world/biome/vanilla"
	"github.com/pelletier/go-toml"
)

// errUnknownBiome is returned when replace_to names a biome that is neither
// part of the pack nor built in.
var errUnknownBiome = errors.New("unknown biome")

// pack is the TOML file of a biome pack.
type pack struct {
	World  string      `toml:"world"`
	Biomes []packBiome `toml:"biome"`
}

type packBiome struct {
	Name string `toml:"name"`
	// ID is the generation id of the biome. If unset and a database is used,
	// an id is allocated.
	ID        *int   `toml:"id"`
	ReplaceTo string `toml:"replace_to"`

	BaseHeight           float64     `toml:"base_height"`
	HeightVariation      float64     `toml:"height_variation"`
	Temperature          float64     `toml:"temperature"`
	UnclampedTemperature *float64    `toml:"unclamped_temperature"`
	Rainfall             float64     `toml:"rainfall"`
	WaterColour          int         `toml:"water_colour"`
	SkyColour            int         `toml:"sky_colour"`
	Spawns               []packSpawn `toml:"spawn"`
}

type packSpawn struct {
	Category string `toml:"category"`
	Species  string `toml:"species"`
	Weight   int    `toml:"weight"`
	MinGroup int    `toml:"min_group"`
	MaxGroup int    `toml:"max_group"`
}

// loadPack reads and decodes the pack at path.
func loadPack(path string) (pack, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return pack{}, fmt.Errorf("read pack: %w", err)
	}
	return decodePack(contents)
}

func decodePack(contents []byte) (pack, error) {
	var p pack
	if err := toml.Unmarshal(contents, &p); err != nil {
		return pack{}, fmt.Errorf("decode pack: %w", err)
	}
	for i, b := range p.Biomes {
		if strings.TrimSpace(b.Name) == "" {
			return pack{}, fmt.Errorf("decode pack: biome %d has no name", i)
		}
	}
	return p, nil
}

// idSource records the ids of biomes and hands out ids for biomes that do not
// specify one.
type idSource interface {
	Allocate(name string) (int, error)
	Assign(name string, id int) error
}

// configs converts the biomes of the pack to biome.Config values. Biomes with
// replace_to set become virtual biomes that share the saved id of the biome
// named. ids may be nil, in which case every biome must specify an id.
func (p pack) configs(ids idSource) ([]biome.Config, error) {
	saved := make(map[string]int)
	for _, b := range vanilla.All() {
		saved[biome.ComputerFriendlyName(b.Name())] = b.ID()
	}
	for id, key := range vanilla.Keys() {
		saved[key.Name] = id
	}

	generation := make([]int, len(p.Biomes))
	for i, b := range p.Biomes {
		id, err := b.generationID(ids)
		if err != nil {
			return nil, err
		}
		generation[i] = id
		if b.ReplaceTo == "" {
			saved[biome.ComputerFriendlyName(b.Name)] = id
		}
	}

	confs := make([]biome.Config, 0, len(p.Biomes))
	var errs []error
	for i, b := range p.Biomes {
		conf := b.config()
		conf.IDs = biome.NewIDs(generation[i])
		if b.ReplaceTo != "" {
			id, ok := saved[biome.ComputerFriendlyName(b.ReplaceTo)]
			if !ok {
				errs = append(errs, unknownBiomeError(b.Name, b.ReplaceTo, slices.Collect(maps.Keys(saved))))
				continue
			}
			conf.IDs = biome.NewVirtualIDs(generation[i], id)
		}
		spawns, err := b.spawns()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		conf.Spawns = spawns
		confs = append(confs, conf)
	}
	return confs, errors.Join(errs...)
}

func (b packBiome) generationID(ids idSource) (int, error) {
	if b.ID != nil {
		id := *b.ID
		if id < 0 || id > biome.MaxID {
			return 0, fmt.Errorf("biome %q: id %d out of range [0, %d]", b.Name, id, biome.MaxID)
		}
		if ids != nil {
			if err := ids.Assign(b.Name, id); err != nil {
				return 0, err
			}
		}
		return id, nil
	}
	if ids == nil {
		return 0, fmt.Errorf("biome %q: no id set and no biome database to allocate one", b.Name)
	}
	id, err := ids.Allocate(b.Name)
	if err != nil {
		return 0, fmt.Errorf("biome %q: %w", b.Name, err)
	}
	return id, nil
}

func (b packBiome) config() biome.Config {
	return biome.Config{
		Name:                 b.Name,
		BaseHeight:           b.BaseHeight,
		HeightVariation:      b.HeightVariation,
		Temperature:          b.Temperature,
		UnclampedTemperature: b.UnclampedTemperature,
		Rainfall:             b.Rainfall,
		WaterColour:          b.WaterColour,
		SkyColour:            b.SkyColour,
	}
}

func (b packBiome) spawns() (lists [len(spawn.Categories)]spawn.List, err error) {
	for _, s := range b.Spawns {
		c, ok := parseCategory(s.Category)
		if !ok {
			return lists, fmt.Errorf("biome %q: unknown spawn category %q", b.Name, s.Category)
		}
		lists[c] = append(lists[c], spawn.Entry{
			Species:  s.Species,
			Weight:   s.Weight,
			MinGroup: s.MinGroup,
			MaxGroup: s.MaxGroup,
		})
	}
	return lists, nil
}

func parseCategory(s string) (spawn.Category, bool) {
	for _, c := range spawn.Categories {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}
	return 0, false
}

// unknownBiomeError returns an error for a replace_to value that names no
// known biome, suggesting the closest known name if there is one.
func unknownBiomeError(name, replaceTo string, known []string) error {
	if s, ok := suggest(biome.ComputerFriendlyName(replaceTo), known); ok {
		return fmt.Errorf("biome %q: replace_to %q: %w (did you mean %q?)", name, replaceTo, errUnknownBiome, s)
	}
	return fmt.Errorf("biome %q: replace_to %q: %w", name, replaceTo, errUnknownBiome)
}

// suggest returns the candidate closest to s by edit distance, if it is close
// enough to be a likely typo.
func suggest(s string, candidates []string) (string, bool) {
	slices.Sort(candidates)
	best, bestDist := "", -1
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(s, c)
		if dist > max(len(c)/3, 1) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best, bestDist >= 0
}

