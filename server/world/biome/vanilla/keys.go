package vanilla

import "github.com/dm-vev/biomebridge/server/world/biome"

// keyNames holds the registry names of all built-in biomes by numeric id.
var keyNames = map[int]string{
	0: "ocean", 1: "plains", 2: "desert", 3: "extreme_hills", 4: "forest",
	5: "taiga", 6: "swampland", 7: "river", 8: "hell", 9: "sky",
	10: "frozen_ocean", 11: "frozen_river", 12: "ice_flats", 13: "ice_mountains",
	14: "mushroom_island", 15: "mushroom_island_shore", 16: "beaches",
	17: "desert_hills", 18: "forest_hills", 19: "taiga_hills",
	20: "smaller_extreme_hills", 21: "jungle", 22: "jungle_hills", 23: "jungle_edge",
	24: "deep_ocean", 25: "stone_beach", 26: "cold_beach", 27: "birch_forest",
	28: "birch_forest_hills", 29: "roofed_forest", 30: "taiga_cold",
	31: "taiga_cold_hills", 32: "redwood_taiga", 33: "redwood_taiga_hills",
	34: "extreme_hills_with_trees", 35: "savanna", 36: "savanna_rock", 37: "mesa",
	38: "mesa_rock", 39: "mesa_clear_rock",

	127: "void", 129: "mutated_plains", 130: "mutated_desert",
	131: "mutated_extreme_hills", 132: "mutated_forest", 133: "mutated_taiga",
	134: "mutated_swampland", 140: "mutated_ice_flats", 149: "mutated_jungle",
	151: "mutated_jungle_edge", 155: "mutated_birch_forest",
	156: "mutated_birch_forest_hills", 157: "mutated_roofed_forest",
	158: "mutated_taiga_cold", 160: "mutated_redwood_taiga",
	161: "mutated_redwood_taiga_hills", 162: "mutated_extreme_hills_with_trees",
	163: "mutated_savanna", 164: "mutated_savanna_rock", 165: "mutated_mesa",
	166: "mutated_mesa_rock", 167: "mutated_mesa_clear_rock",
}

// Keys returns the registry keys of all built-in biomes by numeric id. Ids in
// the reserved ranges without an entry are unused by the host.
func Keys() map[int]biome.Key {
	m := make(map[int]biome.Key, len(keyNames))
	for id, name := range keyNames {
		m[id] = biome.Key{Domain: "minecraft", Name: name}
	}
	return m
}

// Allocator returns a biome.Allocator that lets configured biomes override the
// built-in biomes in place.
func Allocator() *biome.Allocator {
	return biome.NewAllocator(Keys())
}
