package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

type Taiga struct {
	standard
}

func (Taiga) ID() int {
	return 5
}

func (Taiga) Name() string {
	return "Taiga"
}

func (Taiga) Elevation() (base, variation float64) {
	return 0.2, 0.2
}

func (Taiga) Temperature() float64 {
	return 0.25
}

func (Taiga) Rainfall() float64 {
	return 0.8
}

func (t Taiga) Spawns(c spawn.Category) spawn.List {
	if c == spawn.Creature {
		return withCreatures(
			spawn.Entry{Species: "minecraft:wolf", Weight: 8, MinGroup: 4, MaxGroup: 4},
			spawn.Entry{Species: "minecraft:rabbit", Weight: 4, MinGroup: 2, MaxGroup: 3},
		)
	}
	return t.standard.Spawns(c)
}
