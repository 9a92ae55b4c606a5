package ledger

import (
	"errors"
	"fmt"

	"gitlab.com/multicoinnetwork/multicoin/internal/encoding"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
	"gitlab.com/multicoinnetwork/multicoin/storage"
)

// CanMint reports whether an account holds mint permission for a coin.
func (st *StateManager) CanMint(id protocol.CoinId, account protocol.AccountId) (bool, error) {
	b, err := st.batch.Get(mintPermissionKey(id, account))
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, storage.ErrNotFound):
		return false, nil
	default:
		return false, err
	}

	v, err := encoding.BoolUnmarshalBinary(b)
	if err != nil {
		return false, fmt.Errorf("load mint permission of %s for coin %d: %w", account, id, err)
	}
	return v, nil
}

// setMintPermission grants or revokes mint permission. Revocation removes
// the entry instead of storing false.
func (st *StateManager) setMintPermission(id protocol.CoinId, account protocol.AccountId, canMint bool) error {
	if !canMint {
		return st.batch.Delete(mintPermissionKey(id, account))
	}
	return st.batch.Put(mintPermissionKey(id, account), encoding.BoolMarshalBinary(true))
}

// PreferredFeeCoin returns the caller's fee coin preference, or nil if none
// is set.
func (st *StateManager) PreferredFeeCoin(account protocol.AccountId) (*protocol.CoinId, error) {
	b, err := st.batch.Get(preferredFeeCoinKey(account))
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, storage.ErrNotFound):
		return nil, nil
	default:
		return nil, err
	}

	id, err := encoding.UvarintUnmarshalBinary(b)
	if err != nil {
		return nil, fmt.Errorf("load preferred fee coin of %s: %w", account, err)
	}
	return &id, nil
}

func (st *StateManager) setPreferredFeeCoin(account protocol.AccountId, id *protocol.CoinId) error {
	if id == nil {
		return st.batch.Delete(preferredFeeCoinKey(account))
	}
	return st.batch.Put(preferredFeeCoinKey(account), encoding.UvarintMarshalBinary(*id))
}
