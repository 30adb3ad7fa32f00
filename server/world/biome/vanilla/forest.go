package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

type Forest struct {
	standard
}

func (Forest) ID() int {
	return 4
}

func (Forest) Name() string {
	return "Forest"
}

func (Forest) Elevation() (base, variation float64) {
	return 0.1, 0.2
}

func (Forest) Temperature() float64 {
	return 0.7
}

func (Forest) Rainfall() float64 {
	return 0.8
}

func (f Forest) Spawns(c spawn.Category) spawn.List {
	if c == spawn.Creature {
		return withCreatures(spawn.Entry{Species: "minecraft:wolf", Weight: 5, MinGroup: 4, MaxGroup: 4})
	}
	return f.standard.Spawns(c)
}
