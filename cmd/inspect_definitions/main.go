// Command inspect_definitions prints the biome definitions written by
// biomereg -definitions.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/dm-vev/biomebridge/server/world/biome"
)

func main() {
	path := flag.String("file", "biome_definitions.nbt", "path of the encoded biome definitions")
	filter := flag.String("filter", "", "only print biomes whose key contains this string")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defs, err := biome.DecodeDefinitions(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%d biomes, checksum %016x\n", len(defs), xxhash.Sum64(data))
	for _, d := range defs {
		if *filter != "" && !strings.Contains(d.Key, *filter) {
			continue
		}
		fmt.Printf("%4d %-48s temperature=%.2f downfall=%.2f rain=%d snow=%d sky=%06x water=%06x\n",
			d.ID, d.Key, d.Temperature, d.Downfall, d.Rain, d.Snow, d.SkyColour, d.WaterColour)
	}
}
