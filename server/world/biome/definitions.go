package biome

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Definition is the client-facing description of a single registered biome.
type Definition struct {
	Key         string  `nbt:"key"`
	ID          int32   `nbt:"id"`
	Temperature float32 `nbt:"temperature"`
	Downfall    float32 `nbt:"downfall"`
	Rain        uint8   `nbt:"rain"`
	Snow        uint8   `nbt:"snow"`
	SkyColour   int32   `nbt:"sky_colour"`
	WaterColour int32   `nbt:"water_colour"`
}

type definitionList struct {
	Biomes []Definition `nbt:"biomes"`
}

// Definitions holds the network encoded biome definitions sent to clients,
// together with a checksum that changes whenever the encoded data changes.
type Definitions struct {
	Data     []byte
	Checksum uint64
}

// EncodeDefinitions encodes the climate of every record passed into NBT,
// sorted by key so that equal registries produce equal data.
func EncodeDefinitions(records map[Key]*Record) (Definitions, error) {
	list := definitionList{Biomes: make([]Definition, 0, len(records))}
	for k, r := range records {
		list.Biomes = append(list.Biomes, Definition{
			Key:         k.String(),
			ID:          int32(r.ids.saved),
			Temperature: float32(r.props.Temperature),
			Downfall:    float32(r.props.Rainfall),
			Rain:        boolByte(!r.props.RainDisabled),
			Snow:        boolByte(r.props.SnowEnabled),
			SkyColour:   int32(r.props.SkyColour),
			WaterColour: int32(r.props.WaterColour),
		})
	}
	slices.SortFunc(list.Biomes, func(a, b Definition) int {
		return strings.Compare(a.Key, b.Key)
	})
	data, err := nbt.Marshal(list)
	if err != nil {
		return Definitions{}, fmt.Errorf("encode biome definitions: %w", err)
	}
	return Definitions{Data: data, Checksum: xxhash.Sum64(data)}, nil
}

// DecodeDefinitions decodes data produced by EncodeDefinitions.
func DecodeDefinitions(data []byte) ([]Definition, error) {
	var list definitionList
	if err := nbt.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode biome definitions: %w", err)
	}
	return list.Biomes, nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
