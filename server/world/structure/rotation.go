package structure

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is one of the four orientations an object may be placed in. Each
// step rotates the object a quarter turn around the Y axis.
type Rotation uint8

const (
	North Rotation = iota
	East
	South
	West
)

// Next returns the rotation a quarter turn further. West is followed by North.
func (r Rotation) Next() Rotation {
	return (r + 1) % 4
}

// Apply rotates v around the Y axis by the angle of r relative to North.
func (r Rotation) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Rotate3DY(float64(r%4) * math.Pi / 2).Mul3x1(v)
}

// String ...
func (r Rotation) String() string {
	switch r {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// Pos is the position of a block.
type Pos [3]int

// Vec3 returns the position as a vector.
func (p Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// PosFromVec3 returns the block position closest to v.
func PosFromVec3(v mgl64.Vec3) Pos {
	return Pos{int(math.Round(v[0])), int(math.Round(v[1])), int(math.Round(v[2]))}
}

// Add ...
func (p Pos) Add(o Pos) Pos {
	return Pos{p[0] + o[0], p[1] + o[1], p[2] + o[2]}
}
