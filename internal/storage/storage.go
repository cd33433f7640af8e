// Package storage provides the durable key-value primitive the notes store
// persists into, together with change notification across every handle that
// shares the same backend.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage/mock_storage.go -package=mock_storage

const (
	KeyNotes      = "notes"
	KeyFolders    = "folders"
	KeyScratchpad = "scratchpad"
)

var (
	ErrClosed     = errors.New("storage closed")
	ErrInvalidKey = errors.New("invalid storage key")
)

// Event describes a write that landed in the backend.
type Event struct {
	Key     string
	Value   string
	Removed bool
}

// Storage is a whole-value key-value store. Values are opaque strings;
// callers serialize their own documents.
type Storage interface {
	// Get returns the value for key. ok is false when the key was never set
	// or has been removed.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	// Subscribe registers fn to run after every successful Set or Remove.
	// The returned func removes the subscription and is safe to call twice.
	Subscribe(fn func(Event)) (unsubscribe func())
	Close() error
}

// Option configures backends that log their own background work.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindDir    Kind = "dir"
	KindMemory Kind = "memory"
)

// Open returns the backend selected by kind. path is the database file for
// KindSQLite and the data directory for KindDir; KindMemory ignores it.
func Open(kind Kind, path string, opts ...Option) (Storage, error) {
	switch kind {
	case KindSQLite:
		return NewSQLite(path)
	case KindDir:
		return NewDir(path, opts...)
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q", kind)
	}
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
