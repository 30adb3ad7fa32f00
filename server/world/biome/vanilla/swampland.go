package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

type Swampland struct {
	standard
}

func (Swampland) ID() int {
	return 6
}

func (Swampland) Name() string {
	return "Swampland"
}

func (Swampland) Elevation() (base, variation float64) {
	return -0.2, 0.1
}

func (Swampland) Temperature() float64 {
	return 0.8
}

func (Swampland) Rainfall() float64 {
	return 0.9
}

func (s Swampland) Spawns(c spawn.Category) spawn.List {
	if c == spawn.Monster {
		return append(monsters(), spawn.Entry{Species: "minecraft:slime", Weight: 1, MinGroup: 1, MaxGroup: 1})
	}
	return s.standard.Spawns(c)
}
