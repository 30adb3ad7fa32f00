package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

type Desert struct {
	standard
}

func (Desert) ID() int {
	return 2
}

func (Desert) Name() string {
	return "Desert"
}

func (Desert) Elevation() (base, variation float64) {
	return 0.125, 0.05
}

func (Desert) Temperature() float64 {
	return 2.0
}

func (Desert) Rainfall() float64 {
	return 0.0
}

func (d Desert) Spawns(c spawn.Category) spawn.List {
	switch c {
	case spawn.Creature:
		return spawn.List{{Species: "minecraft:rabbit", Weight: 4, MinGroup: 2, MaxGroup: 3}}
	case spawn.Monster:
		return replaceSpecies(monsters(),
			spawn.Entry{Species: "minecraft:zombie", Weight: 19, MinGroup: 4, MaxGroup: 4},
			spawn.Entry{Species: "minecraft:zombie_villager", Weight: 1, MinGroup: 1, MaxGroup: 1},
			spawn.Entry{Species: "minecraft:husk", Weight: 80, MinGroup: 4, MaxGroup: 4},
		)
	}
	return d.standard.Spawns(c)
}
