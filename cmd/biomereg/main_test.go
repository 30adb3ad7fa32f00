package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dm-vev/biomebridge/server/world/biome"
	"github.com/dm-vev/biomebridge/server/world/biome/biomedb"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	packPath := filepath.Join(dir, "biomes.toml")
	contents := testPack + `
[[biome]]
name = "Ashen Waste"
`
	if err := os.WriteFile(packPath, []byte(contents), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	dbDir := filepath.Join(dir, "db")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	defsPath := filepath.Join(dir, "biome_definitions.nbt")
	if err := run(log, packPath, dbDir, defsPath); err != nil {
		t.Fatalf("run returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(defsPath)
	if err != nil {
		t.Fatalf("read definitions: %v", err)
	}
	defs, err := biome.DecodeDefinitions(data)
	if err != nil {
		t.Fatalf("DecodeDefinitions returned unexpected error: %v", err)
	}
	var found bool
	for _, d := range defs {
		if d.Key == "openterraingenerator:green_hills" {
			found = d.ID == 900
		}
	}
	if !found {
		t.Fatalf("definitions %v hold no green_hills entry with id 900", defs)
	}

	db, err := biomedb.Open(dbDir)
	if err != nil {
		t.Fatalf("Open returned unexpected error: %v", err)
	}
	defer db.Close()
	assigned, err := db.All()
	if err != nil {
		t.Fatalf("All returned unexpected error: %v", err)
	}
	want := map[string]int{"Green Hills": 900, "Green Hills Edge": 901, "Sunny Plains": 902, "Ashen Waste": 40}
	for name, id := range want {
		if assigned[name] != id {
			t.Fatalf("biome %q has saved id %v in the database, want %v", name, assigned[name], id)
		}
	}
}
