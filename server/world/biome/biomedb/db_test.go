package biomedb

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dm-vev/biomebridge/server/world/biome"
)

func openTest(t *testing.T, dir string) *DB {
	t.Helper()
	db, err := Config{Log: slog.New(slog.NewTextHandler(io.Discard, nil))}.Open(dir)
	if err != nil {
		t.Fatalf("Open returned unexpected error: %v", err)
	}
	return db
}

func TestAllocateSkipsReserved(t *testing.T) {
	db := openTest(t, t.TempDir())
	defer db.Close()

	id, err := db.Allocate("Green Hills")
	if err != nil {
		t.Fatalf("Allocate returned unexpected error: %v", err)
	}
	if id != 40 {
		t.Fatalf("Allocate returned %v, want 40", id)
	}
	again, err := db.Allocate("Green Hills")
	if err != nil || again != id {
		t.Fatalf("second Allocate returned %v, %v, want %v", again, err, id)
	}
}

func TestAllocateAroundAssigned(t *testing.T) {
	db := openTest(t, t.TempDir())
	defer db.Close()

	for id := 40; id < 127; id++ {
		if err := db.Assign(string(rune('a'+id%26))+string(rune('A'+id/26)), id); err != nil {
			t.Fatalf("Assign(%v) returned unexpected error: %v", id, err)
		}
	}
	id, err := db.Allocate("Mesa Canyon")
	if err != nil {
		t.Fatalf("Allocate returned unexpected error: %v", err)
	}
	if id != 168 {
		t.Fatalf("Allocate returned %v, want 168", id)
	}
	if biome.Reserved(id) {
		t.Fatalf("Allocate returned reserved id %v", id)
	}
}

func TestAssign(t *testing.T) {
	db := openTest(t, t.TempDir())
	defer db.Close()

	if err := db.Assign("Plains Variant", 900); err != nil {
		t.Fatalf("Assign returned unexpected error: %v", err)
	}
	if err := db.Assign("Other", 900); !errors.Is(err, ErrIDTaken) {
		t.Fatalf("Assign to taken id returned %v, want %v", err, ErrIDTaken)
	}
	if err := db.Assign("Other", biome.MaxID+1); err == nil {
		t.Fatal("Assign of id above MaxID returned no error")
	}

	if err := db.Assign("Plains Variant", 901); err != nil {
		t.Fatalf("reassign returned unexpected error: %v", err)
	}
	if _, ok, _ := db.Name(900); ok {
		t.Fatal("previous id still assigned after reassign")
	}
	if name, ok, _ := db.Name(901); !ok || name != "Plains Variant" {
		t.Fatalf("Name(901) returned %q, %v, want Plains Variant", name, ok)
	}
}

func TestPersistence(t *testing.T) {
	dir := t.TempDir()
	db := openTest(t, dir)
	id, err := db.Allocate("Frozen Lake")
	if err != nil {
		t.Fatalf("Allocate returned unexpected error: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close returned unexpected error: %v", err)
	}

	db = openTest(t, dir)
	defer db.Close()
	got, ok, err := db.SavedID("Frozen Lake")
	if err != nil || !ok || got != id {
		t.Fatalf("SavedID after reopen returned %v, %v, %v, want %v", got, ok, err, id)
	}
	all, err := db.All()
	if err != nil {
		t.Fatalf("All returned unexpected error: %v", err)
	}
	if len(all) != 1 || all["Frozen Lake"] != id {
		t.Fatalf("All returned %v, want map[Frozen Lake:%v]", all, id)
	}
}
