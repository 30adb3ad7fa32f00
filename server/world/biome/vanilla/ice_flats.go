package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

type IceFlats struct {
	standard
}

func (IceFlats) ID() int {
	return 12
}

func (IceFlats) Name() string {
	return "Ice Plains"
}

func (IceFlats) Elevation() (base, variation float64) {
	return 0.125, 0.05
}

func (IceFlats) Temperature() float64 {
	return 0.0
}

func (IceFlats) Rainfall() float64 {
	return 0.5
}

func (i IceFlats) Spawns(c spawn.Category) spawn.List {
	switch c {
	case spawn.Creature:
		return spawn.List{
			{Species: "minecraft:rabbit", Weight: 10, MinGroup: 2, MaxGroup: 3},
			{Species: "minecraft:polar_bear", Weight: 1, MinGroup: 1, MaxGroup: 2},
		}
	case spawn.Monster:
		return replaceSpecies(monsters(),
			spawn.Entry{Species: "minecraft:skeleton", Weight: 20, MinGroup: 4, MaxGroup: 4},
			spawn.Entry{Species: "minecraft:stray", Weight: 80, MinGroup: 4, MaxGroup: 4},
		)
	}
	return i.standard.Spawns(c)
}
