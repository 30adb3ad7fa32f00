package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

type ExtremeHills struct {
	standard
}

func (ExtremeHills) ID() int {
	return 3
}

func (ExtremeHills) Name() string {
	return "Extreme Hills"
}

func (ExtremeHills) Elevation() (base, variation float64) {
	return 1.0, 0.5
}

func (ExtremeHills) Temperature() float64 {
	return 0.2
}

func (ExtremeHills) Rainfall() float64 {
	return 0.3
}

func (e ExtremeHills) Spawns(c spawn.Category) spawn.List {
	if c == spawn.Creature {
		return withCreatures(spawn.Entry{Species: "minecraft:llama", Weight: 5, MinGroup: 4, MaxGroup: 6})
	}
	return e.standard.Spawns(c)
}
