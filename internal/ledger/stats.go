package ledger

import (
	"errors"
	"fmt"
	"math/big"

	"gitlab.com/multicoinnetwork/multicoin/protocol"
	"gitlab.com/multicoinnetwork/multicoin/storage"
)

// GetStats loads a coin's counters. Coins without an entry report zeroes.
func (st *StateManager) GetStats(id protocol.CoinId) (*protocol.CoinStats, error) {
	b, err := st.batch.Get(statsKey(id))
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, storage.ErrNotFound):
		return &protocol.CoinStats{Minted: new(big.Int), Burned: new(big.Int)}, nil
	default:
		return nil, err
	}

	s := new(protocol.CoinStats)
	err = s.UnmarshalBinary(b)
	if err != nil {
		return nil, fmt.Errorf("load stats of coin %d: %w", id, err)
	}
	return s, nil
}

func (st *StateManager) putStats(id protocol.CoinId, s *protocol.CoinStats) error {
	b, err := s.MarshalBinary()
	if err != nil {
		return fmt.Errorf("store stats of coin %d: %w", id, err)
	}
	return st.batch.Put(statsKey(id), b)
}

func (st *StateManager) addHolders(id protocol.CoinId, delta int) error {
	s, err := st.GetStats(id)
	if err != nil {
		return err
	}
	if delta < 0 && s.Holders == 0 {
		return fmt.Errorf("holder count of coin %d is already zero", id)
	}
	s.Holders = uint64(int64(s.Holders) + int64(delta))
	return st.putStats(id, s)
}

func (st *StateManager) bumpTransfers(id protocol.CoinId) error {
	s, err := st.GetStats(id)
	if err != nil {
		return err
	}
	s.Transfers++
	return st.putStats(id, s)
}

func (st *StateManager) addMinted(id protocol.CoinId, amount *big.Int) error {
	s, err := st.GetStats(id)
	if err != nil {
		return err
	}
	s.Minted.Add(s.Minted, amount)
	return st.putStats(id, s)
}

func (st *StateManager) addBurned(id protocol.CoinId, amount *big.Int) error {
	s, err := st.GetStats(id)
	if err != nil {
		return err
	}
	s.Burned.Add(s.Burned, amount)
	return st.putStats(id, s)
}
