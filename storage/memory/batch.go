package memory

import (
	"sort"
	"sync"

	"gitlab.com/multicoinnetwork/multicoin/storage"
)

// Entry is a staged write.
type Entry struct {
	Value  []byte
	Delete bool
}

type GetFunc func(storage.Key) ([]byte, error)
type ForEachFunc func(storage.Key, func(storage.Key, []byte) error) error
type CommitFunc func(map[string]Entry) error

// Batch caches writes until Commit hands them to the commit function in one
// call. A batch created without a commit function is read-only.
type Batch struct {
	mu      sync.Mutex
	get     GetFunc
	forEach ForEachFunc
	commit  CommitFunc
	cache   map[string]Entry
	done    bool
}

var _ storage.KeyValueTxn = (*Batch)(nil)

func NewBatch(get GetFunc, forEach ForEachFunc, commit CommitFunc) *Batch {
	return &Batch{get: get, forEach: forEach, commit: commit, cache: map[string]Entry{}}
}

func (b *Batch) Get(key storage.Key) ([]byte, error) {
	b.mu.Lock()
	e, ok := b.cache[string(key)]
	b.mu.Unlock()
	if ok {
		if e.Delete {
			return nil, storage.ErrNotFound
		}
		return e.Value, nil
	}
	return b.get(key)
}

func (b *Batch) Put(key storage.Key, value []byte) error {
	if b.commit == nil {
		return storage.ErrNotOpen
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cache[string(key)] = Entry{Value: value}
	return nil
}

func (b *Batch) PutAll(values map[string][]byte) error {
	if b.commit == nil {
		return storage.ErrNotOpen
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for k, v := range values {
		b.cache[k] = Entry{Value: v}
	}
	return nil
}

func (b *Batch) Delete(key storage.Key) error {
	if b.commit == nil {
		return storage.ErrNotOpen
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cache[string(key)] = Entry{Delete: true}
	return nil
}

func (b *Batch) ForEach(prefix storage.Key, fn func(storage.Key, []byte) error) error {
	// Merge staged writes over the underlying entries
	merged := map[string][]byte{}
	err := b.forEach(prefix, func(key storage.Key, value []byte) error {
		merged[string(key)] = value
		return nil
	})
	if err != nil {
		return err
	}

	b.mu.Lock()
	for k, e := range b.cache {
		if !storage.Key(k).HasPrefix(prefix) {
			continue
		}
		if e.Delete {
			delete(merged, k)
		} else {
			merged[k] = e.Value
		}
	}
	b.mu.Unlock()

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		err := fn(storage.Key(k), merged[k])
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Batch) Commit() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return storage.ErrNotOpen
	}
	b.done = true
	if b.commit == nil {
		return storage.ErrNotOpen
	}
	return b.commit(b.cache)
}

func (b *Batch) Discard() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.done = true
	b.cache = map[string]Entry{}
}
