package biome

import "fmt"

const (
	// MaxID is the highest numeric biome id the registry is expected to hold.
	// Registries are sized to fit it before the first virtual registration.
	MaxID = 1023
	// Domain is the registry domain of biomes that do not override a built-in.
	Domain = "openterraingenerator"
)

// reservedRanges are the closed id ranges owned by built-in biomes. Unmodified
// clients resolve these ids to their own biomes, so they can only be reused to
// override the built-in biome that already holds the id.
var reservedRanges = [...][2]int{{0, 39}, {127, 167}}

// Reserved reports if id lies in a range reserved for built-in biomes.
func Reserved(id int) bool {
	for _, r := range reservedRanges {
		if id >= r[0] && id <= r[1] {
			return true
		}
	}
	return false
}

// IDs holds the numeric identity of a biome. The saved id is the id written to
// storage and returned by reverse lookups. The generation id is used while
// generating terrain and only differs from the saved id for virtual biomes,
// which share the saved slot of another, real, biome.
type IDs struct {
	generation, saved int
	virtual           bool
}

// NewIDs returns the IDs of a regular biome that uses id both during
// generation and in storage.
func NewIDs(id int) IDs {
	return IDs{generation: id, saved: id}
}

// NewVirtualIDs returns the IDs of a virtual biome generated as generationID
// and saved as savedID.
func NewVirtualIDs(generationID, savedID int) IDs {
	return IDs{generation: generationID, saved: savedID, virtual: true}
}

// GenerationID returns the id used during world generation.
func (ids IDs) GenerationID() int { return ids.generation }

// SavedID returns the id persisted to storage.
func (ids IDs) SavedID() int { return ids.saved }

// Virtual reports if the biome is an alias sharing the saved slot of a real
// biome.
func (ids IDs) Virtual() bool { return ids.virtual }

// String ...
func (ids IDs) String() string {
	if ids.virtual {
		return fmt.Sprintf("%d->%d", ids.generation, ids.saved)
	}
	return fmt.Sprint(ids.saved)
}
