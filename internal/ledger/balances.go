package ledger

import (
	"errors"
	"fmt"
	"math/big"

	"gitlab.com/multicoinnetwork/multicoin/internal/encoding"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
	"gitlab.com/multicoinnetwork/multicoin/storage"
)

func (st *StateManager) getAmount(key storage.Key) (*big.Int, error) {
	b, err := st.batch.Get(key)
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, storage.ErrNotFound):
		return new(big.Int), nil
	default:
		return nil, err
	}

	v, err := encoding.BigintUnmarshalBinary(b)
	if err != nil {
		return nil, fmt.Errorf("load %v: %w", key, err)
	}
	return v, nil
}

func (st *StateManager) putAmount(key storage.Key, v *big.Int) error {
	return st.batch.Put(key, encoding.BigintMarshalBinary(v))
}

// BalanceOf returns an account's balance. Accounts with no entry hold zero.
func (st *StateManager) BalanceOf(id protocol.CoinId, account protocol.AccountId) (*big.Int, error) {
	return st.getAmount(balanceKey(id, account))
}

// TotalSupplyOf returns a coin's circulating supply.
func (st *StateManager) TotalSupplyOf(id protocol.CoinId) (*big.Int, error) {
	return st.getAmount(supplyKey(id))
}

// ForEachBalance visits every account holding the coin, in key order.
func (st *StateManager) ForEachBalance(id protocol.CoinId, fn func(account protocol.AccountId, balance *big.Int) error) error {
	prefix := balancePrefix(id)
	return st.batch.ForEach(prefix, func(key storage.Key, value []byte) error {
		balance, err := encoding.BigintUnmarshalBinary(value)
		if err != nil {
			return fmt.Errorf("load %v: %w", key, err)
		}
		return fn(protocol.AccountId(key.Suffix(prefix)), balance)
	})
}

// credit adds amount to an account's balance and to the coin's supply.
// Fails without writing if either sum leaves 128 bits or the supply would
// exceed the configured ceiling.
func (st *StateManager) credit(id protocol.CoinId, account protocol.AccountId, amount *big.Int) error {
	supply, err := st.TotalSupplyOf(id)
	if err != nil {
		return err
	}
	newSupply := new(big.Int).Add(supply, amount)
	if !protocol.IsUint128(newSupply) {
		return protocol.CodeOverflow.WithFormat("supply of coin %d would exceed 128 bits", id)
	}
	if newSupply.Cmp(st.limits.MaxSupply) > 0 {
		return protocol.CodeExceedsMaxSupply.WithFormat("supply of coin %d would exceed %v", id, st.limits.MaxSupply)
	}

	balance, err := st.BalanceOf(id, account)
	if err != nil {
		return err
	}
	newBalance := new(big.Int).Add(balance, amount)
	if !protocol.IsUint128(newBalance) {
		return protocol.CodeOverflow.WithFormat("balance of %s would exceed 128 bits", account)
	}

	err = st.putAmount(supplyKey(id), newSupply)
	if err != nil {
		return err
	}
	err = st.putAmount(balanceKey(id, account), newBalance)
	if err != nil {
		return err
	}

	if balance.Sign() == 0 {
		return st.addHolders(id, +1)
	}
	return nil
}

// debit removes amount from an account's balance and from the coin's
// supply. An account whose balance reaches zero is removed from storage.
func (st *StateManager) debit(id protocol.CoinId, account protocol.AccountId, amount *big.Int) error {
	balance, err := st.BalanceOf(id, account)
	if err != nil {
		return err
	}
	if balance.Cmp(amount) < 0 {
		return protocol.CodeInsufficientBalance.WithFormat("balance of %s is %v, want %v", account, balance, amount)
	}

	supply, err := st.TotalSupplyOf(id)
	if err != nil {
		return err
	}
	if supply.Cmp(amount) < 0 {
		// The supply is the sum of all balances, so this indicates a
		// corrupted store.
		return fmt.Errorf("supply of coin %d is %v, less than the debit %v", id, supply, amount)
	}

	err = st.putAmount(supplyKey(id), new(big.Int).Sub(supply, amount))
	if err != nil {
		return err
	}

	newBalance := new(big.Int).Sub(balance, amount)
	if newBalance.Sign() == 0 {
		err = st.batch.Delete(balanceKey(id, account))
		if err != nil {
			return err
		}
		return st.addHolders(id, -1)
	}
	return st.putAmount(balanceKey(id, account), newBalance)
}
