package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome/spawn"

// standard provides the spawn lists most overworld biomes share.
type standard struct{}

// Spawns ...
func (standard) Spawns(c spawn.Category) spawn.List {
	switch c {
	case spawn.Monster:
		return monsters()
	case spawn.Creature:
		return spawn.List{
			{Species: "minecraft:sheep", Weight: 12, MinGroup: 4, MaxGroup: 4},
			{Species: "minecraft:pig", Weight: 10, MinGroup: 4, MaxGroup: 4},
			{Species: "minecraft:chicken", Weight: 10, MinGroup: 4, MaxGroup: 4},
			{Species: "minecraft:cow", Weight: 8, MinGroup: 4, MaxGroup: 4},
		}
	case spawn.CaveCreature:
		return spawn.List{{Species: "minecraft:bat", Weight: 10, MinGroup: 8, MaxGroup: 8}}
	case spawn.WaterCreature:
		return spawn.List{{Species: "minecraft:squid", Weight: 10, MinGroup: 4, MaxGroup: 4}}
	}
	return nil
}

func monsters() spawn.List {
	return spawn.List{
		{Species: "minecraft:spider", Weight: 100, MinGroup: 4, MaxGroup: 4},
		{Species: "minecraft:zombie", Weight: 95, MinGroup: 4, MaxGroup: 4},
		{Species: "minecraft:zombie_villager", Weight: 5, MinGroup: 1, MaxGroup: 1},
		{Species: "minecraft:skeleton", Weight: 100, MinGroup: 4, MaxGroup: 4},
		{Species: "minecraft:creeper", Weight: 100, MinGroup: 4, MaxGroup: 4},
		{Species: "minecraft:slime", Weight: 100, MinGroup: 4, MaxGroup: 4},
		{Species: "minecraft:enderman", Weight: 10, MinGroup: 1, MaxGroup: 4},
		{Species: "minecraft:witch", Weight: 5, MinGroup: 1, MaxGroup: 1},
	}
}

// withCreatures returns the standard creatures of a biome extended with extra.
func withCreatures(extra ...spawn.Entry) spawn.List {
	return append(standard{}.Spawns(spawn.Creature), extra...)
}

// replaceSpecies returns l with the entries of the species in repl replaced,
// appending species that l does not hold yet.
func replaceSpecies(l spawn.List, repl ...spawn.Entry) spawn.List {
	for _, r := range repl {
		found := false
		for i, e := range l {
			if e.Species == r.Species {
				l[i], found = r, true
			}
		}
		if !found {
			l = append(l, r)
		}
	}
	return l
}
