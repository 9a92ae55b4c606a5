package protocol

import "math/big"

// One event record is emitted per successful mutating operation. Consumers
// read these as an append-only audit log; the ledger never reads them back.

type CoinCreated struct {
	CoinId        CoinId
	Symbol        string
	CoinName      string
	Creator       AccountId
	InitialSupply *big.Int
}

func (CoinCreated) Name() string { return "CoinCreated" }

type TransferRecord struct {
	CoinId CoinId
	From   AccountId
	To     AccountId
	Amount *big.Int
}

func (TransferRecord) Name() string { return "Transfer" }

type Minted struct {
	CoinId CoinId
	To     AccountId
	Amount *big.Int
}

func (Minted) Name() string { return "Minted" }

type Burned struct {
	CoinId CoinId
	From   AccountId
	Amount *big.Int
}

func (Burned) Name() string { return "Burned" }

type OwnershipTransferred struct {
	CoinId   CoinId
	OldOwner AccountId
	NewOwner AccountId
}

func (OwnershipTransferred) Name() string { return "OwnershipTransferred" }

type MintPermissionSet struct {
	CoinId  CoinId
	Account AccountId
	CanMint bool
}

func (MintPermissionSet) Name() string { return "MintPermissionSet" }

type FeeConfigUpdated struct {
	CoinId         CoinId
	TransferFee    *big.Int
	MinimumBalance *big.Int
	CanPayTxFees   bool
}

func (FeeConfigUpdated) Name() string { return "FeeConfigUpdated" }

type PreferredFeeCoinSet struct {
	Account AccountId
	CoinId  *CoinId
}

func (PreferredFeeCoinSet) Name() string { return "PreferredFeeCoinSet" }
