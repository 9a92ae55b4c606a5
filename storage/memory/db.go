package memory

import (
	"sort"
	"sync"

	"gitlab.com/multicoinnetwork/multicoin/storage"
)

// DB implements a key value store in memory. Very basic, assumes no initial
// state for the database.
type DB struct {
	mu      sync.RWMutex
	entries map[string][]byte
	open    bool
}

var _ storage.KeyValueStore = (*DB)(nil)

func New() *DB {
	return &DB{entries: map[string][]byte{}, open: true}
}

// Begin begins a batch. A read-only batch rejects writes and cannot be
// committed.
func (d *DB) Begin(writable bool) storage.KeyValueTxn {
	if !writable {
		return NewBatch(d.get, d.forEach, nil)
	}
	return NewBatch(d.get, d.forEach, d.commit)
}

// Close clears the entries and marks the database closed.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return storage.ErrNotOpen
	}
	d.open = false
	d.entries = nil
	return nil
}

// Export copies out every entry. Useful for verifying that a failed operation
// left the store untouched.
func (d *DB) Export() map[string][]byte {
	d.mu.RLock()
	defer d.mu.RUnlock()
	entries := make(map[string][]byte, len(d.entries))
	for k, v := range d.entries {
		u := make([]byte, len(v))
		copy(u, v)
		entries[k] = u
	}
	return entries
}

func (d *DB) get(key storage.Key) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.open {
		return nil, storage.ErrNotOpen
	}
	v, ok := d.entries[string(key)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

func (d *DB) forEach(prefix storage.Key, fn func(storage.Key, []byte) error) error {
	d.mu.RLock()
	if !d.open {
		d.mu.RUnlock()
		return storage.ErrNotOpen
	}

	// Copy the matching keys so fn can write to the database
	var keys []string
	for k := range d.entries {
		if storage.Key(k).HasPrefix(prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = d.entries[k]
	}
	d.mu.RUnlock()

	for i, k := range keys {
		err := fn(storage.Key(k), values[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) commit(entries map[string]Entry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return storage.ErrNotOpen
	}

	for k, e := range entries {
		if e.Delete {
			delete(d.entries, k)
		} else {
			d.entries[k] = e.Value
		}
	}
	return nil
}
