// Package biomereg registers configured biomes in the biome registry of the
// host.
//
// Besides regular biomes, biomereg supports virtual biomes: biomes generated
// under their own id but saved as the id of another, real, biome. For every
// saved id shared this way, looking up the id yields the real biome, while
// looking up the id of the real biome or of any of its virtual aliases yields
// the saved id. Unmodified clients therefore only ever see the real biome.
package biomereg
