package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

type River struct {
	standard
}

func (River) ID() int {
	return 7
}

func (River) Name() string {
	return "River"
}

func (River) Elevation() (base, variation float64) {
	return -0.5, 0.0
}

func (River) Temperature() float64 {
	return 0.5
}

func (River) Rainfall() float64 {
	return 0.5
}

func (r River) Spawns(c spawn.Category) spawn.List {
	if c == spawn.Creature {
		return nil
	}
	return r.standard.Spawns(c)
}
