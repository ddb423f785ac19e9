// Package storage implements the durable keyed store and the registration
// list kept in it.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get for keys that were never written.
var ErrKeyNotFound = errors.New("key not found")

// UpdateFunc receives the current value (nil when absent) and returns the
// value to store.
type UpdateFunc func(old []byte) ([]byte, error)

// KV is a durable string-keyed store. Update is atomic with respect to other
// Update calls on the same store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Close() error
}

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open returns the store for driver. dsn is ignored for the memory driver.
func Open(ctx context.Context, driver, dsn string) (KV, error) {
	switch driver {
	case DriverSQLite:
		return OpenSQLite(ctx, dsn)
	case DriverMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
