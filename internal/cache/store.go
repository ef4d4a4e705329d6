package cache

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Store.Read when no entry exists for the key.
var ErrNotFound = errors.New("cache entry not found")

// Store persists one opaque payload per key together with the time it was
// written. Implementations decide how the write time is recorded.
type Store interface {
	Read(key string) ([]byte, time.Time, error)
	Write(key string, data []byte) error
}
