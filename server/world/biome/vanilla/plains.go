package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

type Plains struct {
	standard
}

func (Plains) ID() int {
	return 1
}

func (Plains) Name() string {
	return "Plains"
}

func (Plains) Elevation() (base, variation float64) {
	return 0.125, 0.05
}

func (Plains) Temperature() float64 {
	return 0.8
}

func (Plains) Rainfall() float64 {
	return 0.4
}

func (p Plains) Spawns(c spawn.Category) spawn.List {
	if c == spawn.Creature {
		return withCreatures(
			spawn.Entry{Species: "minecraft:horse", Weight: 5, MinGroup: 2, MaxGroup: 6},
			spawn.Entry{Species: "minecraft:donkey", Weight: 1, MinGroup: 1, MaxGroup: 3},
		)
	}
	return p.standard.Spawns(c)
}
