package spawn

import "fmt"

// Category is one of the four spawn lists every biome carries.
type Category uint8

const (
	Monster Category = iota
	Creature
	CaveCreature
	WaterCreature
)

// Categories lists every Category in the order biome records store them.
var Categories = [...]Category{Monster, Creature, CaveCreature, WaterCreature}

// String ...
func (c Category) String() string {
	switch c {
	case Monster:
		return "monster"
	case Creature:
		return "creature"
	case CaveCreature:
		return "cave_creature"
	case WaterCreature:
		return "water_creature"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Entry is a single weighted spawn group of a species. Species is the identity
// used when de-duplicating entries from different sources.
type Entry struct {
	// Species identifies the entity type spawned, for example "minecraft:zombie".
	Species string
	// Weight is the relative chance of this entry being picked.
	Weight int
	// MinGroup and MaxGroup bound the size of a spawned group.
	MinGroup, MaxGroup int
}

// Viable reports if the entry can ever spawn anything. Entries with a zero or
// negative weight or maximum group size are treated as explicitly disabled.
func (e Entry) Viable() bool {
	return e.Weight > 0 && e.MaxGroup > 0
}

// String ...
func (e Entry) String() string {
	return fmt.Sprintf("%s(w=%d, %d-%d)", e.Species, e.Weight, e.MinGroup, e.MaxGroup)
}

// List is an ordered list of spawn entries.
type List []Entry

// Contains reports if the list holds an entry for the species passed.
func (l List) Contains(species string) bool {
	for _, e := range l {
		if e.Species == species {
			return true
		}
	}
	return false
}
