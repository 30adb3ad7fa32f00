package vanilla

import (
	"fmt"

	"github.com/dm-vev/biomebridge/server/world/biome"
	"github.com/dm-vev/biomebridge/server/world/biome/registry"
	"github.com/dm-vev/biomebridge/server/world/biome/spawn"
)

// Biome is a built-in biome the host registers before any configured biome.
// Its spawn lists are the defaults that configured spawn lists are merged with.
type Biome interface {
	// ID returns the numeric id of the biome.
	ID() int
	// Name returns the display name of the biome.
	Name() string
	// Elevation returns the base height and height variation of the biome.
	Elevation() (base, variation float64)
	// Temperature returns the temperature of the biome.
	Temperature() float64
	// Rainfall returns the rainfall of the biome.
	Rainfall() float64
	// Spawns returns the default spawn list of category c.
	Spawns(c spawn.Category) spawn.List
}

// All returns every built-in biome with a default configuration, sorted by id.
func All() []Biome {
	return []Biome{
		Ocean{}, Plains{}, Desert{}, ExtremeHills{}, Forest{}, Taiga{},
		Swampland{}, River{}, IceFlats{}, BirchForest{},
	}
}

// Config returns the biome.Config a host would install b with.
func Config(b Biome) biome.Config {
	base, variation := b.Elevation()
	conf := biome.Config{
		Name:            b.Name(),
		IDs:             biome.NewIDs(b.ID()),
		BaseHeight:      base,
		HeightVariation: variation,
		Temperature:     b.Temperature(),
		Rainfall:        b.Rainfall(),
		WaterColour:     0x3f76e4,
		SkyColour:       skyColour(b.Temperature()),
	}
	for _, c := range spawn.Categories {
		conf.Spawns[c] = b.Spawns(c)
	}
	return conf
}

// Install registers every built-in biome in reg, the way the host does before
// any world is loaded.
func Install(reg registry.Registry, f biome.Factory) error {
	keys := Keys()
	for _, b := range All() {
		key, ok := keys[b.ID()]
		if !ok {
			return fmt.Errorf("install %s: no key for id %d", b.Name(), b.ID())
		}
		if err := reg.Register(b.ID(), key, f.New(Config(b), nil)); err != nil {
			return fmt.Errorf("install %s: %w", b.Name(), err)
		}
	}
	return nil
}

// skyColour returns the sky colour the host derives from temperature.
func skyColour(temperature float64) int {
	t := min(max(temperature/3, -1), 1)
	return hsvToRGB(0.62222224-t*0.05, 0.5+t*0.1, 1)
}

func hsvToRGB(hue, saturation, value float64) int {
	i := int(hue*6) % 6
	f := hue*6 - float64(int(hue*6))
	p := value * (1 - saturation)
	q := value * (1 - f*saturation)
	t := value * (1 - (1-f)*saturation)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = value, t, p
	case 1:
		r, g, b = q, value, p
	case 2:
		r, g, b = p, value, t
	case 3:
		r, g, b = p, q, value
	case 4:
		r, g, b = t, p, value
	default:
		r, g, b = value, p, q
	}
	return int(r*255)<<16 | int(g*255)<<8 | int(b*255)
}
