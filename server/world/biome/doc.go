// Package biome implements the identity and climate model of configured
// biomes.
//
// An Allocator hands out registry keys, refusing ids reserved for built-in
// biomes unless the biome overrides the built-in that owns the id. A Factory
// turns a Config into an immutable Record, merging configured spawn lists with
// the spawn lists of the record previously registered under the same key.
package biome
