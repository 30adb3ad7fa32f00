package biomedb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
	"github.com/df-mc/goleveldb/leveldb/util"
	"github.com/dm-vev/biomebridge/server/world/biome"
)

var (
	// ErrFull is returned by Allocate if every saved id outside the reserved
	// ranges up to biome.MaxID has been assigned.
	ErrFull = errors.New("no free saved biome ids left")
	// ErrIDTaken is returned by Assign if the id is already assigned to a
	// different biome.
	ErrIDTaken = errors.New("saved biome id already assigned")
)

var (
	keyPrefix = []byte("biome/name/")
	idPrefix  = []byte("biome/id/")
)

// Config holds the settings used to open a DB.
type Config struct {
	// Log is the Logger used to log allocations. If nil, slog.Default() is
	// used.
	Log *slog.Logger
	// ReadOnly opens the database without write access.
	ReadOnly bool
}

// DB persists the saved ids assigned to configured biomes of a world, so that
// a biome keeps its saved id between loads of the world.
type DB struct {
	conf Config
	log  *slog.Logger

	mu  sync.Mutex
	ldb *leveldb.DB
}

// Open opens the database in dir, creating it if it does not exist and the
// Config is not read only.
func (conf Config) Open(dir string) (*DB, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	ldb, err := leveldb.OpenFile(dir, &opt.Options{
		Compression:    opt.SnappyCompression,
		ReadOnly:       conf.ReadOnly,
		ErrorIfMissing: conf.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("open biome db %v: %w", dir, err)
	}
	return &DB{conf: conf, log: conf.Log.With("subsystem", "biomedb"), ldb: ldb}, nil
}

// Open opens the database in dir using the default Config.
func Open(dir string) (*DB, error) {
	return Config{}.Open(dir)
}

// SavedID returns the saved id assigned to the biome with the name passed.
// If none was assigned, false is returned.
func (db *DB) SavedID(name string) (int, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.savedIDLocked(name)
}

func (db *DB) savedIDLocked(name string) (int, bool, error) {
	v, err := db.ldb.Get(nameKey(name), nil)
	switch {
	case err == nil:
		if len(v) != 2 {
			return 0, false, fmt.Errorf("saved id of biome %q: malformed value %x", name, v)
		}
		return int(binary.LittleEndian.Uint16(v)), true, nil
	case errors.Is(err, leveldb.ErrNotFound):
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("saved id of biome %q: %w", name, err)
	}
}

// Name returns the name of the biome the saved id passed is assigned to.
func (db *DB) Name(id int) (string, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.nameLocked(id)
}

func (db *DB) nameLocked(id int) (string, bool, error) {
	v, err := db.ldb.Get(idKey(id), nil)
	switch {
	case err == nil:
		return string(v), true, nil
	case errors.Is(err, leveldb.ErrNotFound):
		return "", false, nil
	default:
		return "", false, fmt.Errorf("biome with saved id %v: %w", id, err)
	}
}

// Assign assigns the saved id passed to the biome with the name passed. Any
// id previously assigned to the biome is released.
func (db *DB) Assign(name string, id int) error {
	if id < 0 || id > biome.MaxID {
		return fmt.Errorf("assign saved id %v to biome %q: id out of range [0, %v]", id, name, biome.MaxID)
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	owner, ok, err := db.nameLocked(id)
	if err != nil {
		return err
	}
	if ok && owner != name {
		return fmt.Errorf("assign saved id %v to biome %q: %w (held by %q)", id, name, ErrIDTaken, owner)
	}
	return db.putLocked(name, id)
}

// Allocate returns the saved id of the biome with the name passed, assigning
// the lowest free id outside the reserved ranges if the biome has none yet.
func (db *DB) Allocate(name string) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if id, ok, err := db.savedIDLocked(name); err != nil || ok {
		return id, err
	}
	used, err := db.usedLocked()
	if err != nil {
		return 0, err
	}
	for id := 0; id <= biome.MaxID; id++ {
		if biome.Reserved(id) || used[id] {
			continue
		}
		if err := db.putLocked(name, id); err != nil {
			return 0, err
		}
		db.log.Debug("Allocated saved biome id.", "name", name, "saved_id", id)
		return id, nil
	}
	return 0, fmt.Errorf("allocate saved id for biome %q: %w", name, ErrFull)
}

// All returns every assignment held by the database, keyed by biome name.
func (db *DB) All() (map[string]int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	m := make(map[string]int)
	iter := db.ldb.NewIterator(util.BytesPrefix(keyPrefix), nil)
	defer iter.Release()
	for iter.Next() {
		if v := iter.Value(); len(v) == 2 {
			m[string(iter.Key()[len(keyPrefix):])] = int(binary.LittleEndian.Uint16(v))
		}
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iterate biome db: %w", err)
	}
	return m, nil
}

// Close closes the database.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.ldb.Close()
}

func (db *DB) usedLocked() (map[int]bool, error) {
	used := make(map[int]bool)
	iter := db.ldb.NewIterator(util.BytesPrefix(idPrefix), nil)
	defer iter.Release()
	for iter.Next() {
		if k := iter.Key(); len(k) == len(idPrefix)+2 {
			used[int(binary.LittleEndian.Uint16(k[len(idPrefix):]))] = true
		}
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iterate biome db: %w", err)
	}
	return used, nil
}

func (db *DB) putLocked(name string, id int) error {
	batch := new(leveldb.Batch)
	if prev, ok, err := db.savedIDLocked(name); err != nil {
		return err
	} else if ok && prev != id {
		batch.Delete(idKey(prev))
	}
	v := make([]byte, 2)
	binary.LittleEndian.PutUint16(v, uint16(id))
	batch.Put(nameKey(name), v)
	batch.Put(idKey(id), []byte(name))
	if err := db.ldb.Write(batch, nil); err != nil {
		return fmt.Errorf("write saved id of biome %q: %w", name, err)
	}
	return nil
}

func nameKey(name string) []byte {
	return append(append([]byte(nil), keyPrefix...), name...)
}

func idKey(id int) []byte {
	return binary.LittleEndian.AppendUint16(append([]byte(nil), idPrefix...), uint16(id))
}
