package storage

import (
	"errors"
)

// ErrNotFound is returned by KeyValueTxn.Get if the key is not found.
var ErrNotFound = errors.New("not found")

// ErrNotOpen is returned by KeyValueTxn.Get, .Put, and .Close if the database
// is not open.
var ErrNotOpen = errors.New("not open")

// KeyValueTxn is a transaction over a key-value store. Writes are staged and
// become visible to other transactions only after Commit. Discard drops all
// staged writes.
type KeyValueTxn interface {
	Get(key Key) ([]byte, error)
	Put(key Key, value []byte) error
	PutAll(map[string][]byte) error
	Delete(key Key) error

	// ForEach calls fn for every entry whose key starts with prefix, in
	// lexicographic key order. Staged writes of this transaction are visible.
	ForEach(prefix Key, fn func(key Key, value []byte) error) error

	Commit() error
	Discard()
}

type KeyValueStore interface {
	Close() error // Returns an error if the close fails
	Begin(writable bool) KeyValueTxn
}

// Logger defines a generic logging interface compatible with the rest of the
// system (and with Tendermint, where the shape comes from).
type Logger interface {
	Debug(msg string, keyVals ...interface{})
	Info(msg string, keyVals ...interface{})
	Error(msg string, keyVals ...interface{})
}
