package biome

import (
	"errors"
	"fmt"
)

// ErrReservedID is returned when a new biome asks for an id owned by a built-in
// biome that it does not override.
var ErrReservedID = errors.New("biome id is reserved for built-in biomes")

// ReservedIDError is returned by Allocator.Key when the generation id of a
// biome lies in a reserved range without a built-in key to override. Reassigning
// the id silently would make unmodified clients see a different biome than
// the server, so registration of the biome must be aborted.
type ReservedIDError struct {
	ID   int
	Name string
}

// Error ...
func (e *ReservedIDError) Error() string {
	return fmt.Sprintf("biome %q: id %d: %v", e.Name, e.ID, ErrReservedID)
}

// Unwrap returns ErrReservedID.
func (e *ReservedIDError) Unwrap() error {
	return ErrReservedID
}
