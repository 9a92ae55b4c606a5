package storage

// DebugBatch logs every call made to a batch. Wrap a batch in a DebugBatch to
// trace where reads and writes are coming from.
type DebugBatch struct {
	Batch    KeyValueTxn
	Logger   Logger
	Writable bool
}

var _ KeyValueTxn = (*DebugBatch)(nil)

func (b *DebugBatch) Get(key Key) ([]byte, error) {
	v, err := b.Batch.Get(key)
	if err != nil {
		b.Logger.Debug("Get", "key", key.String(), "error", err)
	} else {
		b.Logger.Debug("Get", "key", key.String(), "len", len(v))
	}
	return v, err
}

func (b *DebugBatch) Put(key Key, value []byte) error {
	b.Logger.Debug("Put", "key", key.String(), "len", len(value))
	return b.Batch.Put(key, value)
}

func (b *DebugBatch) PutAll(values map[string][]byte) error {
	b.Logger.Debug("PutAll", "count", len(values))
	return b.Batch.PutAll(values)
}

func (b *DebugBatch) Delete(key Key) error {
	b.Logger.Debug("Delete", "key", key.String())
	return b.Batch.Delete(key)
}

func (b *DebugBatch) ForEach(prefix Key, fn func(Key, []byte) error) error {
	b.Logger.Debug("ForEach", "prefix", prefix.String())
	return b.Batch.ForEach(prefix, fn)
}

func (b *DebugBatch) Commit() error {
	b.Logger.Debug("Commit", "writable", b.Writable)
	return b.Batch.Commit()
}

func (b *DebugBatch) Discard() {
	b.Logger.Debug("Discard", "writable", b.Writable)
	b.Batch.Discard()
}
