package ledger

import (
	"gitlab.com/multicoinnetwork/multicoin/protocol"
	"gitlab.com/multicoinnetwork/multicoin/storage"
)

// Key layout. Coin identifiers are fixed-width so entries of one coin are
// contiguous; account identifiers are variable-length and therefore last.

var nextCoinIdKey = storage.MakeKey("NextCoinId")

func coinKey(id protocol.CoinId) storage.Key {
	return storage.MakeKey("Coin", id)
}

func symbolKey(symbol string) storage.Key {
	return storage.MakeKey("Symbol", symbol)
}

func balanceKey(id protocol.CoinId, account protocol.AccountId) storage.Key {
	return storage.MakeKey("Balance", id, string(account))
}

func balancePrefix(id protocol.CoinId) storage.Key {
	return storage.MakeKey("Balance", id)
}

func supplyKey(id protocol.CoinId) storage.Key {
	return storage.MakeKey("Supply", id)
}

func mintPermissionKey(id protocol.CoinId, account protocol.AccountId) storage.Key {
	return storage.MakeKey("MintPermission", id, string(account))
}

func statsKey(id protocol.CoinId) storage.Key {
	return storage.MakeKey("Stats", id)
}

func preferredFeeCoinKey(account protocol.AccountId) storage.Key {
	return storage.MakeKey("PreferredFeeCoin", string(account))
}
