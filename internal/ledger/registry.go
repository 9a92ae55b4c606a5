package ledger

import (
	"errors"
	"fmt"

	"gitlab.com/multicoinnetwork/multicoin/internal/encoding"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
	"gitlab.com/multicoinnetwork/multicoin/storage"
)

// GetCoin loads a coin's metadata.
func (st *StateManager) GetCoin(id protocol.CoinId) (*protocol.CoinInfo, error) {
	b, err := st.batch.Get(coinKey(id))
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, storage.ErrNotFound):
		return nil, protocol.CodeCoinNotFound.WithFormat("coin %d not found", id)
	default:
		return nil, err
	}

	info := new(protocol.CoinInfo)
	err = info.UnmarshalBinary(b)
	if err != nil {
		return nil, fmt.Errorf("load coin %d: %w", id, err)
	}
	return info, nil
}

func (st *StateManager) putCoin(id protocol.CoinId, info *protocol.CoinInfo) error {
	b, err := info.MarshalBinary()
	if err != nil {
		return fmt.Errorf("store coin %d: %w", id, err)
	}
	return st.batch.Put(coinKey(id), b)
}

// LookupSymbol resolves a symbol to a coin identifier.
func (st *StateManager) LookupSymbol(symbol string) (protocol.CoinId, bool, error) {
	b, err := st.batch.Get(symbolKey(symbol))
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, storage.ErrNotFound):
		return 0, false, nil
	default:
		return 0, false, err
	}

	id, err := encoding.UvarintUnmarshalBinary(b)
	if err != nil {
		return 0, false, fmt.Errorf("load symbol %q: %w", symbol, err)
	}
	return id, true, nil
}

func (st *StateManager) registerSymbol(symbol string, id protocol.CoinId) error {
	_, ok, err := st.LookupSymbol(symbol)
	if err != nil {
		return err
	}
	if ok {
		return protocol.CodeSymbolAlreadyExists.WithFormat("symbol %q is already registered", symbol)
	}
	return st.batch.Put(symbolKey(symbol), encoding.UvarintMarshalBinary(id))
}

// NextCoinId returns the identifier the next created coin will receive,
// which is also the number of coins registered so far.
func (st *StateManager) NextCoinId() (uint64, error) {
	b, err := st.batch.Get(nextCoinIdKey)
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, storage.ErrNotFound):
		return 0, nil
	default:
		return 0, err
	}

	id, err := encoding.UvarintUnmarshalBinary(b)
	if err != nil {
		return 0, fmt.Errorf("load next coin id: %w", err)
	}
	return id, nil
}

func (st *StateManager) allocateCoinId() (protocol.CoinId, error) {
	id, err := st.NextCoinId()
	if err != nil {
		return 0, err
	}

	err = st.batch.Put(nextCoinIdKey, encoding.UvarintMarshalBinary(id+1))
	if err != nil {
		return 0, err
	}
	return id, nil
}
