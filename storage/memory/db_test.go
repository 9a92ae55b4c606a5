package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/multicoinnetwork/multicoin/storage"
	"gitlab.com/multicoinnetwork/multicoin/storage/memory"
)

func TestCommitVisibility(t *testing.T) {
	db := memory.New()
	defer db.Close()

	batch := db.Begin(true)
	require.NoError(t, batch.Put(storage.MakeKey("a"), []byte{1}))

	// Uncommitted writes are not visible to other batches
	other := db.Begin(false)
	_, err := other.Get(storage.MakeKey("a"))
	require.ErrorIs(t, err, storage.ErrNotFound)
	other.Discard()

	require.NoError(t, batch.Commit())

	other = db.Begin(false)
	defer other.Discard()
	v, err := other.Get(storage.MakeKey("a"))
	require.NoError(t, err)
	require.Equal(t, []byte{1}, v)
}

func TestDiscard(t *testing.T) {
	db := memory.New()
	defer db.Close()

	batch := db.Begin(true)
	require.NoError(t, batch.Put(storage.MakeKey("a"), []byte{1}))
	batch.Discard()

	require.Empty(t, db.Export())
}

func TestDelete(t *testing.T) {
	db := memory.New()
	defer db.Close()

	batch := db.Begin(true)
	require.NoError(t, batch.Put(storage.MakeKey("a"), []byte{1}))
	require.NoError(t, batch.Commit())

	batch = db.Begin(true)
	require.NoError(t, batch.Delete(storage.MakeKey("a")))

	// The staged delete is visible within the batch
	_, err := batch.Get(storage.MakeKey("a"))
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, batch.Commit())

	require.Empty(t, db.Export())
}

func TestReadYourWrites(t *testing.T) {
	db := memory.New()
	defer db.Close()

	batch := db.Begin(true)
	defer batch.Discard()
	require.NoError(t, batch.Put(storage.MakeKey("a"), []byte{1}))

	v, err := batch.Get(storage.MakeKey("a"))
	require.NoError(t, err)
	require.Equal(t, []byte{1}, v)
}

func TestForEach(t *testing.T) {
	db := memory.New()
	defer db.Close()

	batch := db.Begin(true)
	require.NoError(t, batch.Put(storage.MakeKey("Balance", uint64(1), "alice"), []byte{1}))
	require.NoError(t, batch.Put(storage.MakeKey("Balance", uint64(1), "bob"), []byte{2}))
	require.NoError(t, batch.Put(storage.MakeKey("Balance", uint64(2), "carol"), []byte{3}))
	require.NoError(t, batch.Put(storage.MakeKey("Supply", uint64(1)), []byte{4}))
	require.NoError(t, batch.Commit())

	batch = db.Begin(false)
	defer batch.Discard()

	var keys []string
	err := batch.ForEach(storage.MakeKey("Balance", uint64(1)), func(k storage.Key, v []byte) error {
		keys = append(keys, string(k.Suffix(storage.MakeKey("Balance", uint64(1)))))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, keys)
}

func TestReadOnlyBatch(t *testing.T) {
	db := memory.New()
	defer db.Close()

	batch := db.Begin(false)
	defer batch.Discard()

	err := batch.Put(storage.MakeKey("a"), []byte{1})
	require.ErrorIs(t, err, storage.ErrNotOpen)
	err = batch.Commit()
	require.ErrorIs(t, err, storage.ErrNotOpen)
}

func TestCommitTwice(t *testing.T) {
	db := memory.New()
	defer db.Close()

	batch := db.Begin(true)
	require.NoError(t, batch.Put(storage.MakeKey("a"), []byte{1}))
	require.NoError(t, batch.Commit())
	require.ErrorIs(t, batch.Commit(), storage.ErrNotOpen)
}
