package vanilla

import (
	"testing"

	"github.com/dm-vev/biomebridge/server/world/biome"
	"github.com/dm-vev/biomebridge/server/world/biome/registry"
	"github.com/dm-vev/biomebridge/server/world/biome/spawn"
)

func TestKeysAreReserved(t *testing.T) {
	for id, k := range Keys() {
		if !biome.Reserved(id) {
			t.Fatalf("built-in key %v uses unreserved id %d", k, id)
		}
		if k.Domain != "minecraft" {
			t.Fatalf("built-in key %v is not in the minecraft domain", k)
		}
	}
}

func TestInstall(t *testing.T) {
	reg := registry.NewMemory(0)
	if err := Install(reg, biome.Factory{}); err != nil {
		t.Fatalf("Install returned unexpected error: %v", err)
	}
	if reg.Len() != len(All()) {
		t.Fatalf("registry holds %d biomes, want %d", reg.Len(), len(All()))
	}
	for _, b := range All() {
		r, ok := reg.ByID(b.ID())
		if !ok {
			t.Fatalf("%s not registered under id %d", b.Name(), b.ID())
		}
		if r.Name() != b.Name() {
			t.Fatalf("ByID(%d) = %v, want %s", b.ID(), r, b.Name())
		}
		if len(r.Spawns(spawn.Monster)) == 0 {
			t.Fatalf("%s has no default monsters", b.Name())
		}
	}
}

func TestInstallAgainWithNewRecordsRejected(t *testing.T) {
	reg := registry.NewMemory(0)
	_ = Install(reg, biome.Factory{})
	// Install creates fresh records, so keys already bound to other records
	// are refused by the registry.
	if err := Install(reg, biome.Factory{}); err == nil {
		t.Fatal("expected second Install with fresh records to fail")
	}
}

func TestDesertDefaults(t *testing.T) {
	monsters := Desert{}.Spawns(spawn.Monster)
	for _, e := range monsters {
		if e.Species == "minecraft:zombie" && e.Weight != 19 {
			t.Fatalf("desert zombie weight = %d, want 19", e.Weight)
		}
	}
	if !monsters.Contains("minecraft:husk") {
		t.Fatal("desert monsters do not contain husks")
	}
	conf := Config(Desert{})
	r := biome.Factory{}.New(conf, nil)
	if !r.Properties().RainDisabled {
		t.Fatal("desert has rain enabled")
	}
}

func TestSkyColour(t *testing.T) {
	// Plains at 0.8 degrees have the well known light blue sky of the host.
	if got := skyColour(0.8); got != 0x78a7ff {
		t.Fatalf("skyColour(0.8) = %#x, want %#x", got, 0x78a7ff)
	}
}
