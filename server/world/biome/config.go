package biome

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

// Config holds the parsed configuration of a single biome as supplied by the
// configuration layer. Values are expected to be range-validated already.
type Config struct {
	// Name is the human-readable name of the biome, for example "Plains".
	Name string
	// IDs is the numeric identity assigned to the biome.
	IDs IDs

	// BaseHeight and HeightVariation shape the terrain of the biome.
	BaseHeight, HeightVariation float64
	// Rainfall is the wetness of the biome. Rain is disabled when it is (close
	// to) zero.
	Rainfall float64
	// Temperature is the configured temperature. Values strictly between 0.1
	// and 0.2 are snapped out of that interval.
	Temperature float64
	// UnclampedTemperature is the temperature as written by the user before
	// range validation. It decides which side of the forbidden temperature
	// interval Temperature is snapped to. If nil, Temperature is used.
	UnclampedTemperature *float64
	// WaterColour is the RGB tint of water in the biome.
	WaterColour int
	// SkyColour is the RGB colour of the sky, used regardless of temperature.
	SkyColour int

	// Spawns holds the configured spawn lists, indexed by spawn.Category.
	Spawns [len(spawn.Categories)]spawn.List
}

func (conf Config) temperatureReference() float64 {
	if conf.UnclampedTemperature != nil {
		return *conf.UnclampedTemperature
	}
	return conf.Temperature
}
