package biome

// Tinter computes grass and foliage colours at a position in a biome. It is
// implemented by the host, which usually derives colours from the temperature
// and rainfall of the biome.
type Tinter interface {
	GrassColour(r *Record, x, z int) int
	FoliageColour(r *Record, x, z int) int
}

// NopTinter is a Tinter that returns the default plains colours everywhere.
type NopTinter struct{}

// GrassColour ...
func (NopTinter) GrassColour(*Record, int, int) int { return 0x91bd59 }

// FoliageColour ...
func (NopTinter) FoliageColour(*Record, int, int) int { return 0x77ab2f }

const (
	swampGrassNoiseScale     = 0.0225
	swampGrassNoiseThreshold = -0.1

	swampGrassDark  = 5011004
	swampGrassLight = 6975545
	swampFoliage    = 6975545
)

// grassNoise is the noise the client uses to vary swamp grass colours.
var grassNoise = newSimplex(2345)

// swamp reports if r is one of the swamp biomes whose colours are computed
// from noise instead of by the Tinter.
func (r *Record) swamp() bool {
	return r.name == "Swampland" || r.name == "Swampland M"
}

// GrassColourAt returns the grass colour at the block column x, z.
func (r *Record) GrassColourAt(x, z int) int {
	if r.swamp() {
		if grassNoise.noise2D(float64(x)*swampGrassNoiseScale, float64(z)*swampGrassNoiseScale) < swampGrassNoiseThreshold {
			return swampGrassDark
		}
		return swampGrassLight
	}
	return r.tinter.GrassColour(r, x, z)
}

// FoliageColourAt returns the foliage colour at the block column x, z.
func (r *Record) FoliageColourAt(x, z int) int {
	if r.swamp() {
		return swampFoliage
	}
	return r.tinter.FoliageColour(r, x, z)
}
