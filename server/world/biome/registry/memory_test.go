package registry

import (
	"errors"
	"testing"

	"github.com/dm-vev/biomebridge/server/world/biome"
)

func newRecord(name string, id int) *biome.Record {
	return biome.Factory{}.New(biome.Config{Name: name, IDs: biome.NewIDs(id)}, nil)
}

func TestMemoryRegisterAndLookup(t *testing.T) {
	m := NewMemory(0)
	key := biome.Key{Domain: "minecraft", Name: "plains"}
	plains := newRecord("Plains", 1)

	if err := m.Register(1, key, plains); err != nil {
		t.Fatalf("Register returned unexpected error: %v", err)
	}
	if r, ok := m.ByKey(key); !ok || r != plains {
		t.Fatalf("ByKey returned %v, %v, want plains", r, ok)
	}
	if r, ok := m.ByID(1); !ok || r != plains {
		t.Fatalf("ByID(1) returned %v, %v, want plains", r, ok)
	}
	if id, ok := m.IDOf(plains); !ok || id != 1 {
		t.Fatalf("IDOf returned %v, %v, want 1", id, ok)
	}
	if k, ok := m.KeyOf(plains); !ok || k != key {
		t.Fatalf("KeyOf returned %v, %v, want %v", k, ok, key)
	}
	if _, ok := m.ByID(2); ok {
		t.Fatal("ByID(2) found a record in an empty slot")
	}
}

func TestMemoryRegisterOverwritesIDButKeepsReverse(t *testing.T) {
	m := NewMemory(0)
	a, b := newRecord("A", 5), newRecord("B", 5)
	ka, kb := biome.Key{Domain: "x", Name: "a"}, biome.Key{Domain: "x", Name: "b"}

	if err := m.Register(900, kb, b); err != nil {
		t.Fatalf("Register returned unexpected error: %v", err)
	}
	if err := m.Register(5, kb, b); err != nil {
		t.Fatalf("Register returned unexpected error: %v", err)
	}
	if err := m.Register(5, ka, a); err != nil {
		t.Fatalf("Register returned unexpected error: %v", err)
	}
	if r, _ := m.ByID(5); r != a {
		t.Fatalf("ByID(5) = %v, want A", r)
	}
	if r, _ := m.ByID(900); r != b {
		t.Fatalf("ByID(900) = %v, want B", r)
	}
	if id, _ := m.IDOf(b); id != 5 {
		t.Fatalf("IDOf(B) = %d, want 5", id)
	}
}

func TestMemoryRejections(t *testing.T) {
	m := NewMemory(100)
	key := biome.Key{Domain: "x", Name: "a"}
	if err := m.Register(1, key, newRecord("A", 1)); err != nil {
		t.Fatalf("Register returned unexpected error: %v", err)
	}

	cases := map[string]struct {
		err  error
		want error
	}{
		"taken key":    {m.Register(2, key, newRecord("Other", 2)), ErrKeyTaken},
		"negative id":  {m.Register(-1, biome.Key{Name: "n"}, newRecord("N", -1)), ErrInvalidID},
		"id too large": {m.Register(101, biome.Key{Name: "n"}, newRecord("N", 101)), ErrInvalidID},
		"nil record":   {m.Register(3, biome.Key{Name: "n"}, nil), ErrNilRecord},
		"unknown key":  {m.Unregister(biome.Key{Name: "missing"}), ErrUnknownKey},
		"capacity":     {m.EnsureCapacity(101), ErrInvalidID},
	}
	for name, c := range cases {
		if !errors.Is(c.err, c.want) {
			t.Fatalf("%s: got error %v, want %v", name, c.err, c.want)
		}
		var rerr *RejectionError
		if !errors.As(c.err, &rerr) {
			t.Fatalf("%s: error %v is not a *RejectionError", name, c.err)
		}
	}
}

func TestMemoryUnregister(t *testing.T) {
	m := NewMemory(0)
	key := biome.Key{Domain: "x", Name: "a"}
	a := newRecord("A", 7)
	_ = m.Register(700, key, a)
	_ = m.Register(7, key, a)

	if err := m.Unregister(key); err != nil {
		t.Fatalf("Unregister returned unexpected error: %v", err)
	}
	if _, ok := m.ByKey(key); ok {
		t.Fatal("ByKey found record after Unregister")
	}
	for _, id := range []int{7, 700} {
		if _, ok := m.ByID(id); ok {
			t.Fatalf("ByID(%d) found record after Unregister", id)
		}
	}
	if _, ok := m.IDOf(a); ok {
		t.Fatal("IDOf found record after Unregister")
	}
	if err := m.Register(8, key, newRecord("B", 8)); err != nil {
		t.Fatalf("Register after Unregister returned unexpected error: %v", err)
	}
}

func TestMemoryEnsureCapacityPreventsResize(t *testing.T) {
	m := NewMemory(0)
	if err := m.EnsureCapacity(biome.MaxID); err != nil {
		t.Fatalf("EnsureCapacity returned unexpected error: %v", err)
	}
	before := m.Resizes()
	for i, id := range []int{3, 600, biome.MaxID, 40} {
		if err := m.Register(id, biome.Key{Domain: "x", Name: string(rune('a' + i))}, newRecord("R", id)); err != nil {
			t.Fatalf("Register(%d) returned unexpected error: %v", id, err)
		}
	}
	if after := m.Resizes(); after != before {
		t.Fatalf("id table resized %d times after EnsureCapacity", after-before)
	}
	if m.Len() != 4 || len(m.All()) != 4 {
		t.Fatalf("Len() = %d, want 4", m.Len())
	}
}

func TestRejectKeepsOffendingID(t *testing.T) {
	key := biome.Key{Domain: "x", Name: "a"}
	m := NewMemory(0)
	err := Reject("unregister", key, 300, m.Unregister(key))
	var rerr *RejectionError
	if !errors.As(err, &rerr) {
		t.Fatalf("Reject returned %v, want *RejectionError", err)
	}
	if rerr.ID != 300 || !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Reject returned id %d with error %v, want id 300 wrapping %v", rerr.ID, rerr.Err, ErrUnknownKey)
	}

	inner := Reject("register", key, 5, ErrKeyTaken)
	if err := Reject("register", key, 9, inner); err.(*RejectionError).ID != 5 {
		t.Fatalf("Reject replaced id 5 of an existing rejection with %d", err.(*RejectionError).ID)
	}
}
