package ledger

import (
	"math/big"

	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

// Queries run against a read-only snapshot of the store. They never fail:
// missing entries read as zero values, and storage errors are logged and
// reported as absence.

func (x *Executor) view(fn func(st *StateManager) error) {
	batch := x.opts.Store.Begin(false)
	defer batch.Discard()

	st := NewStateManager(batch, x.opts.Limits, x.opts.Reserver, x.logger.L)
	err := fn(st)
	if err != nil {
		x.logger.Error("Query failed", "error", err)
	}
}

// BalanceOf returns an account's balance of a coin. Unknown coins and
// accounts hold zero.
func (x *Executor) BalanceOf(id protocol.CoinId, account protocol.AccountId) *big.Int {
	v := new(big.Int)
	x.view(func(st *StateManager) error {
		b, err := st.BalanceOf(id, account)
		if err != nil {
			return err
		}
		v.Set(b)
		return nil
	})
	return v
}

// TotalSupplyOf returns a coin's circulating supply. Unknown coins report
// zero.
func (x *Executor) TotalSupplyOf(id protocol.CoinId) *big.Int {
	v := new(big.Int)
	x.view(func(st *StateManager) error {
		s, err := st.TotalSupplyOf(id)
		if err != nil {
			return err
		}
		v.Set(s)
		return nil
	})
	return v
}

// GetCoinMetadata returns a coin's metadata, or nil if the coin does not
// exist.
func (x *Executor) GetCoinMetadata(id protocol.CoinId) *protocol.CoinInfo {
	var info *protocol.CoinInfo
	x.view(func(st *StateManager) error {
		v, err := st.GetCoin(id)
		if err != nil {
			return nil //nolint:nilerr // absence is not a query failure
		}
		info = v
		return nil
	})
	return info
}

// GetCoinIdBySymbol resolves a symbol to a coin identifier.
func (x *Executor) GetCoinIdBySymbol(symbol string) (protocol.CoinId, bool) {
	var id protocol.CoinId
	var ok bool
	x.view(func(st *StateManager) error {
		var err error
		id, ok, err = st.LookupSymbol(symbol)
		return err
	})
	return id, ok
}

// HasMintPermission reports whether an account may mint a coin.
func (x *Executor) HasMintPermission(id protocol.CoinId, account protocol.AccountId) bool {
	var ok bool
	x.view(func(st *StateManager) error {
		var err error
		ok, err = st.CanMint(id, account)
		return err
	})
	return ok
}

// GetCoinStats returns a coin's counters. Unknown coins report zeroes.
func (x *Executor) GetCoinStats(id protocol.CoinId) *protocol.CoinStats {
	stats := &protocol.CoinStats{Minted: new(big.Int), Burned: new(big.Int)}
	x.view(func(st *StateManager) error {
		s, err := st.GetStats(id)
		if err != nil {
			return err
		}
		stats = s
		return nil
	})
	return stats
}

// PreferredFeeCoin returns an account's fee coin preference, or nil.
func (x *Executor) PreferredFeeCoin(account protocol.AccountId) *protocol.CoinId {
	var id *protocol.CoinId
	x.view(func(st *StateManager) error {
		var err error
		id, err = st.PreferredFeeCoin(account)
		return err
	})
	return id
}

// Balances returns every account holding the coin and its balance. Emptied
// accounts are not included.
func (x *Executor) Balances(id protocol.CoinId) map[protocol.AccountId]*big.Int {
	balances := map[protocol.AccountId]*big.Int{}
	x.view(func(st *StateManager) error {
		return st.ForEachBalance(id, func(account protocol.AccountId, balance *big.Int) error {
			balances[account] = balance
			return nil
		})
	})
	return balances
}

// CoinDeposit returns the native deposit locked per coin creation.
func (x *Executor) CoinDeposit() *big.Int {
	return new(big.Int).Set(x.opts.Limits.CoinDeposit)
}

// CoinCount returns the number of registered coins.
func (x *Executor) CoinCount() uint64 {
	var n uint64
	x.view(func(st *StateManager) error {
		var err error
		n, err = st.NextCoinId()
		return err
	})
	return n
}
