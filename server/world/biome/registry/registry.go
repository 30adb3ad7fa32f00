package registry

import (
	"errors"
	"fmt"

	"github.com/dm-vev/biomebridge/server/world/biome"
)

// Registry is the biome registry of the host. It is shared, global state that
// other writers may modify as well, so every mutation is immediately visible
// and cannot be rolled back.
type Registry interface {
	// ByKey returns the record registered under key.
	ByKey(key biome.Key) (*biome.Record, bool)
	// ByID returns the record that numeric id resolves to.
	ByID(id int) (*biome.Record, bool)
	// IDOf returns the numeric id that r resolves to.
	IDOf(r *biome.Record) (int, bool)
	// KeyOf returns the key r was last registered under.
	KeyOf(r *biome.Record) (biome.Key, bool)
	// Register binds key to r and maps id to r and r to id, replacing any
	// record previously mapped to id.
	Register(id int, key biome.Key, r *biome.Record) error
	// Unregister removes the record registered under key.
	Unregister(key biome.Key) error
	// EnsureCapacity sizes the id table of the registry so that it can hold
	// maxIndex without growing.
	EnsureCapacity(maxIndex int) error
}

var (
	// ErrKeyTaken is returned when registering a record under a key that is
	// bound to a different record.
	ErrKeyTaken = errors.New("key is bound to another record")
	// ErrUnknownKey is returned when unregistering a key that is not bound.
	ErrUnknownKey = errors.New("key is not registered")
	// ErrInvalidID is returned for ids the registry cannot hold.
	ErrInvalidID = errors.New("id out of range")
	// ErrNilRecord is returned when registering a nil record.
	ErrNilRecord = errors.New("record is nil")
)

// RejectionError is returned when the registry refuses a mutation. It carries
// the key and id of the offending operation.
type RejectionError struct {
	Op  string
	Key biome.Key
	ID  int
	Err error
}

// Error ...
func (e *RejectionError) Error() string {
	return fmt.Sprintf("registry %s %v (id %d): %v", e.Op, e.Key, e.ID, e.Err)
}

// Unwrap ...
func (e *RejectionError) Unwrap() error {
	return e.Err
}

// Reject wraps err in a *RejectionError for op on key and id. If err already
// is a *RejectionError, it is returned as is, with its id set to id if it
// carries none.
func Reject(op string, key biome.Key, id int, err error) error {
	if err == nil {
		return nil
	}
	var rerr *RejectionError
	if errors.As(err, &rerr) {
		if rerr.ID < 0 {
			rerr.ID = id
		}
		return err
	}
	return &RejectionError{Op: op, Key: key, ID: id, Err: err}
}
