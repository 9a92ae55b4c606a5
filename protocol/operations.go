package protocol

import "math/big"

// OperationType identifies a mutating ledger operation.
type OperationType uint64

const (
	OperationTypeUnknown OperationType = iota
	OperationTypeCreateCoin
	OperationTypeTransfer
	OperationTypeMint
	OperationTypeBurn
	OperationTypeTransferOwnership
	OperationTypeSetMintPermission
	OperationTypeSetFeeConfig
	OperationTypeSetPreferredFeeCoin
)

func (t OperationType) String() string {
	switch t {
	case OperationTypeCreateCoin:
		return "create-coin"
	case OperationTypeTransfer:
		return "transfer"
	case OperationTypeMint:
		return "mint"
	case OperationTypeBurn:
		return "burn"
	case OperationTypeTransferOwnership:
		return "transfer-ownership"
	case OperationTypeSetMintPermission:
		return "set-mint-permission"
	case OperationTypeSetFeeConfig:
		return "set-fee-config"
	case OperationTypeSetPreferredFeeCoin:
		return "set-preferred-fee-coin"
	default:
		return "unknown"
	}
}

// Operation is the body of a mutating call. The caller is part of the body
// because the ledger has no signature machinery of its own; the host
// environment authenticates callers.
type Operation interface {
	Type() OperationType
}

// CreateCoin registers a new coin and credits the caller with the initial
// supply. Minters are optional additional accounts granted mint permission
// at creation.
type CreateCoin struct {
	Caller        AccountId
	Symbol        string
	Name          string
	Decimals      uint8
	InitialSupply *big.Int
	Minters       []AccountId
}

func (*CreateCoin) Type() OperationType { return OperationTypeCreateCoin }

// Transfer moves coins from the caller to another account.
type Transfer struct {
	Caller AccountId
	CoinId CoinId
	To     AccountId
	Amount *big.Int
}

func (*Transfer) Type() OperationType { return OperationTypeTransfer }

// Mint creates new coins for an account. Requires mint permission.
type Mint struct {
	Caller AccountId
	CoinId CoinId
	To     AccountId
	Amount *big.Int
}

func (*Mint) Type() OperationType { return OperationTypeMint }

// Burn destroys coins from the caller's own balance.
type Burn struct {
	Caller AccountId
	CoinId CoinId
	Amount *big.Int
}

func (*Burn) Type() OperationType { return OperationTypeBurn }

// TransferOwnership hands a coin to a new owner. Owner only.
type TransferOwnership struct {
	Caller   AccountId
	CoinId   CoinId
	NewOwner AccountId
}

func (*TransferOwnership) Type() OperationType { return OperationTypeTransferOwnership }

// SetMintPermission grants or revokes mint permission. Owner only.
type SetMintPermission struct {
	Caller  AccountId
	CoinId  CoinId
	Account AccountId
	CanMint bool
}

func (*SetMintPermission) Type() OperationType { return OperationTypeSetMintPermission }

// SetFeeConfig replaces a coin's fee policy. Owner only.
type SetFeeConfig struct {
	Caller         AccountId
	CoinId         CoinId
	TransferFee    *big.Int
	MinimumBalance *big.Int
	CanPayTxFees   bool
}

func (*SetFeeConfig) Type() OperationType { return OperationTypeSetFeeConfig }

// SetPreferredFeeCoin records which coin the host fee meter should charge
// for the caller. A nil CoinId clears the preference.
type SetPreferredFeeCoin struct {
	Caller AccountId
	CoinId *CoinId
}

func (*SetPreferredFeeCoin) Type() OperationType { return OperationTypeSetPreferredFeeCoin }
