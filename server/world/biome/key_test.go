package biome

import (
	"errors"
	"testing"
)

func TestAllocatorRejectsReservedIDs(t *testing.T) {
	a := NewAllocator(nil)
	for _, id := range []int{0, 1, 20, 39, 127, 140, 167} {
		_, err := a.Key(id, "Custom")
		if !errors.Is(err, ErrReservedID) {
			t.Fatalf("Key(%d) returned error %v, want ErrReservedID", id, err)
		}
		var rerr *ReservedIDError
		if !errors.As(err, &rerr) || rerr.ID != id || rerr.Name != "Custom" {
			t.Fatalf("Key(%d) returned error %#v, want *ReservedIDError for id %d", id, err, id)
		}
	}
}

func TestAllocatorAcceptsFreeIDs(t *testing.T) {
	a := NewAllocator(nil)
	for _, id := range []int{-1, 40, 100, 126, 168, 255, 900, MaxID} {
		k, err := a.Key(id, "Custom Biome")
		if err != nil {
			t.Fatalf("Key(%d) returned unexpected error: %v", id, err)
		}
		if want := (Key{Domain: Domain, Name: "custom_biome"}); k != want {
			t.Fatalf("Key(%d) returned %v, want %v", id, k, want)
		}
	}
}

func TestAllocatorOverridesKnownKeyInPlace(t *testing.T) {
	plains := Key{Domain: "minecraft", Name: "plains"}
	a := NewAllocator(map[int]Key{1: plains, 300: {Domain: "other", Name: "thing"}})

	for _, name := range []string{"Plains", "Totally Different"} {
		k, err := a.Key(1, name)
		if err != nil {
			t.Fatalf("Key(1, %q) returned unexpected error: %v", name, err)
		}
		if k != plains {
			t.Fatalf("Key(1, %q) returned %v, want %v", name, k, plains)
		}
	}
	if k, _ := a.Key(300, "Whatever"); k.String() != "other:thing" {
		t.Fatalf("Key(300) returned %v, want other:thing", k)
	}
	if k, ok := a.Known(1); !ok || k != plains {
		t.Fatalf("Known(1) returned %v, %v, want %v", k, ok, plains)
	}
	if _, ok := a.Known(2); ok {
		t.Fatal("Known(2) found a key that was never bound")
	}
}

func TestComputerFriendlyName(t *testing.T) {
	cases := map[string]string{
		"Plains":              "plains",
		"Swampland M":         "swampland_m",
		"  Extreme   Hills ":  "extreme_hills",
		"Birch\tForest Hills": "birch_forest_hills",
		"ÉTANG":               "étang",
	}
	for input, want := range cases {
		if got := ComputerFriendlyName(input); got != want {
			t.Fatalf("ComputerFriendlyName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParseKey(t *testing.T) {
	cases := map[string]Key{
		"minecraft:plains":              {Domain: "minecraft", Name: "plains"},
		"plains":                        {Domain: "minecraft", Name: "plains"},
		"openterraingenerator:red_sand": {Domain: Domain, Name: "red_sand"},
	}
	for input, want := range cases {
		if got := ParseKey(input); got != want {
			t.Fatalf("ParseKey(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIDs(t *testing.T) {
	regular := NewIDs(5)
	if regular.Virtual() || regular.GenerationID() != 5 || regular.SavedID() != 5 {
		t.Fatalf("NewIDs(5) = %+v, want non-virtual ids 5/5", regular)
	}
	virtual := NewVirtualIDs(900, 5)
	if !virtual.Virtual() || virtual.GenerationID() != 900 || virtual.SavedID() != 5 {
		t.Fatalf("NewVirtualIDs(900, 5) = %+v, want virtual ids 900/5", virtual)
	}
	if virtual.String() != "900->5" {
		t.Fatalf("String() = %q, want 900->5", virtual.String())
	}
}
