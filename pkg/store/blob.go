// Package store provides the durable blob stores tasks are persisted to.
package store

import (
	"errors"
	"io"
)

// ErrNotFound is returned by Blob.Read when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Blob is an opaque key-value store holding one serialized value per key.
// Writes overwrite the whole value.
type Blob interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
}

// Backend is a Blob opened from configuration.
type Backend interface {
	Blob
	io.Closer
	// Name identifies the backend kind, for example "diskv".
	Name() string
	// Location describes where the data lives, for display.
	Location() string
}

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open creates the backend selected by cfg.
func Open(cfg Config) (Backend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case "", BackendDiskv:
		return NewDiskv(cfg.BasePath())
	case BackendSQLite:
		return OpenSQLite(SQLitePath(cfg.BasePath()))
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, errors.New("store: unknown backend " + cfg.Backend())
}
