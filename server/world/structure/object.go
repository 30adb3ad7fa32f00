package structure

import (
	"fmt"
)

// Placer spawns stored structure parts into a world.
type Placer interface {
	// SpawnForced places the structure part stored at path at pos, ignoring the
	// area that is normally available for populating chunks.
	SpawnForced(path string, rot Rotation, pos Pos) error
}

// MinecraftObject is a block of a custom object that places a structure part
// of the host instead of a single block.
type MinecraftObject struct {
	// X, Y and Z are the offset of the part from the origin of the object.
	X, Y, Z int
	// Part is the path of the stored structure part.
	Part string
	// Rotation is the orientation the part is placed in.
	Rotation Rotation
}

// Offset returns the offset of the part as a Pos.
func (m MinecraftObject) Offset() Pos {
	return Pos{m.X, m.Y, m.Z}
}

// Rotate returns the object rotated a quarter turn: the offset (x, y, z)
// becomes (z, y, -x) and the rotation advances to the next orientation.
// Rotating four times yields the original object.
func (m MinecraftObject) Rotate() MinecraftObject {
	off := PosFromVec3(East.Apply(m.Offset().Vec3()))
	return MinecraftObject{X: off[0], Y: off[1], Z: off[2], Part: m.Part, Rotation: m.Rotation.Next()}
}

// Spawn places the part at the offset of m from origin. Unlike regular blocks
// of an object, the part is always placed, even outside of the area being
// populated.
func (m MinecraftObject) Spawn(p Placer, origin Pos) error {
	pos := origin.Add(m.Offset())
	if err := p.SpawnForced(m.Part, m.Rotation, pos); err != nil {
		return fmt.Errorf("spawn structure part %q at %v: %w", m.Part, pos, err)
	}
	return nil
}

// AnalogousTo reports if o occupies the same offset as m.
func (m MinecraftObject) AnalogousTo(o MinecraftObject) bool {
	return m.X == o.X && m.Y == o.Y && m.Z == o.Z
}

// String ...
func (m MinecraftObject) String() string {
	return fmt.Sprintf("MinecraftObject(%d,%d,%d,%s)", m.X, m.Y, m.Z, m.Part)
}
