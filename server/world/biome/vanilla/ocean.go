package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

type Ocean struct {
	standard
}

func (Ocean) ID() int {
	return 0
}

func (Ocean) Name() string {
	return "Ocean"
}

func (Ocean) Elevation() (base, variation float64) {
	return -1.0, 0.1
}

func (Ocean) Temperature() float64 {
	return 0.5
}

func (Ocean) Rainfall() float64 {
	return 0.5
}

func (o Ocean) Spawns(c spawn.Category) spawn.List {
	if c == spawn.Creature {
		return nil
	}
	return o.standard.Spawns(c)
}
