package badger

import (
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger"
	"gitlab.com/multicoinnetwork/multicoin/storage"
)

type Batch struct {
	db       *DB
	txn      *badger.Txn
	writable bool
	done     bool
}

var _ storage.KeyValueTxn = (*Batch)(nil)

func (d *DB) Begin(writable bool) storage.KeyValueTxn {
	b := new(Batch)
	b.db = d
	b.txn = d.badgerDB.NewTransaction(writable)
	b.writable = writable
	mTxnOpen.Inc()
	if d.logger == nil {
		return b
	}
	return &storage.DebugBatch{Batch: b, Logger: d.logger, Writable: writable}
}

func (b *Batch) lock() (sync.Locker, error) {
	l, err := b.db.lock(false)
	if err == nil {
		return l, nil
	}

	b.Discard()
	return nil, err
}

func (b *Batch) Get(key storage.Key) ([]byte, error) {
	if l, err := b.lock(); err != nil {
		return nil, err
	} else {
		defer l.Unlock()
	}

	item, err := b.txn.Get(key)
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, storage.ErrNotFound
	default:
		return nil, err
	}

	v, err := item.ValueCopy(nil)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, storage.ErrNotFound
	}
	return v, err
}

func (b *Batch) Put(key storage.Key, value []byte) error {
	if l, err := b.lock(); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	return b.txn.Set(key, value)
}

func (b *Batch) PutAll(values map[string][]byte) error {
	if l, err := b.lock(); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	for k, v := range values {
		err := b.txn.Set([]byte(k), v)
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Batch) Delete(key storage.Key) error {
	if l, err := b.lock(); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	return b.txn.Delete(key)
}

func (b *Batch) ForEach(prefix storage.Key, fn func(storage.Key, []byte) error) error {
	if l, err := b.lock(); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := b.txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		item := it.Item()
		key := storage.Key(item.KeyCopy(nil))
		value, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		err = fn(key, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Batch) Commit() error {
	if l, err := b.lock(); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	start := time.Now()
	defer func() { mCommitDuration.Set(time.Since(start).Seconds()) }()
	return b.txn.Commit()
}

// Discard discards the transaction. Safe to call after Commit.
func (b *Batch) Discard() {
	if !b.done {
		b.done = true
		mTxnOpen.Dec()
	}
	b.txn.Discard()
}
