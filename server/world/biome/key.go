package biome

import (
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Key is the name a biome is registered under, unique within a registry.
type Key struct {
	Domain, Name string
}

// ParseKey parses a key in the form domain:name. Keys without a domain are
// placed in the minecraft domain.
func ParseKey(s string) Key {
	domain, name, ok := strings.Cut(s, ":")
	if !ok {
		return Key{Domain: "minecraft", Name: s}
	}
	return Key{Domain: domain, Name: name}
}

// String returns the key formatted as domain:name.
func (k Key) String() string {
	return k.Domain + ":" + k.Name
}

// Zero reports if the key is the zero value.
func (k Key) Zero() bool {
	return k.Domain == "" && k.Name == ""
}

var lower = cases.Lower(language.Und)

// ComputerFriendlyName lowercases name and replaces every run of whitespace
// with a single underscore, producing the path part of a registry key.
func ComputerFriendlyName(name string) string {
	return strings.Join(strings.Fields(lower.String(name)), "_")
}

// Allocator produces registry keys for biomes. Biomes with an id that a known
// key is bound to, usually a built-in biome, take over that key. All other
// biomes get a key in Domain derived from their name.
type Allocator struct {
	known map[int]Key
}

// NewAllocator returns an Allocator that treats the keys passed as bound to
// their ids. The map is copied.
func NewAllocator(known map[int]Key) *Allocator {
	return &Allocator{known: maps.Clone(known)}
}

// Key returns the registry key for a biome generated with generationID. A
// *ReservedIDError is returned if generationID is reserved and no key is
// bound to it.
func (a *Allocator) Key(generationID int, name string) (Key, error) {
	if k, ok := a.Known(generationID); ok {
		return k, nil
	}
	if Reserved(generationID) {
		return Key{}, &ReservedIDError{ID: generationID, Name: name}
	}
	return Key{Domain: Domain, Name: ComputerFriendlyName(name)}, nil
}

// Known returns the key bound to id, if any.
func (a *Allocator) Known(id int) (Key, bool) {
	k, ok := a.known[id]
	return k, ok
}
