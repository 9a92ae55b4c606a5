package protocol

import (
	"math/big"

	"gitlab.com/multicoinnetwork/multicoin/internal/encoding"
)

// CoinId identifies a registered coin. Identifiers are assigned sequentially
// starting at 0 and are never reused.
type CoinId = uint64

// AccountId is an opaque account identifier. The ledger does not interpret
// it beyond equality.
type AccountId string

// maxUint128 is the ceiling for balances and supplies. All amounts are
// unsigned 128-bit quantities.
var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// IsUint128 returns true if v fits in an unsigned 128-bit integer.
func IsUint128(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(maxUint128) <= 0
}

// CoinInfo is the metadata of a registered coin. Owner is the only mutable
// field (via TransferOwnership); FeeConfig is mutable via SetFeeConfig.
type CoinInfo struct {
	Symbol    string
	Name      string
	Decimals  uint8
	Owner     AccountId
	Deposit   *big.Int
	FeeConfig FeeConfig
}

// FeeConfig is the per-coin fee policy. The zero value imposes no fees and
// no minimum balance.
type FeeConfig struct {
	TransferFee    *big.Int
	MinimumBalance *big.Int
	CanPayTxFees   bool
}

// GetTransferFee returns the transfer fee, treating nil as zero.
func (f *FeeConfig) GetTransferFee() *big.Int {
	if f.TransferFee == nil {
		return new(big.Int)
	}
	return f.TransferFee
}

// GetMinimumBalance returns the minimum balance, treating nil as zero.
func (f *FeeConfig) GetMinimumBalance() *big.Int {
	if f.MinimumBalance == nil {
		return new(big.Int)
	}
	return f.MinimumBalance
}

// CoinStats are observational counters maintained alongside the ledger. They
// impose no constraints on any operation.
type CoinStats struct {
	Holders   uint64
	Transfers uint64
	Minted    *big.Int
	Burned    *big.Int
}

func (c *CoinInfo) MarshalBinary() ([]byte, error) {
	var b []byte
	b = append(b, encoding.StringMarshalBinary(c.Symbol)...)
	b = append(b, encoding.StringMarshalBinary(c.Name)...)
	b = append(b, encoding.UvarintMarshalBinary(uint64(c.Decimals))...)
	b = append(b, encoding.StringMarshalBinary(string(c.Owner))...)
	b = append(b, encoding.BigintMarshalBinary(c.Deposit)...)
	b = append(b, encoding.BigintMarshalBinary(c.FeeConfig.TransferFee)...)
	b = append(b, encoding.BigintMarshalBinary(c.FeeConfig.MinimumBalance)...)
	b = append(b, encoding.BoolMarshalBinary(c.FeeConfig.CanPayTxFees)...)
	return b, nil
}

func (c *CoinInfo) UnmarshalBinary(data []byte) error {
	symbol, err := encoding.StringUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.StringBinarySize(symbol):]

	name, err := encoding.StringUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.StringBinarySize(name):]

	decimals, err := encoding.UvarintUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.UvarintBinarySize(decimals):]

	owner, err := encoding.StringUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.StringBinarySize(owner):]

	deposit, err := encoding.BigintUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.BigintBinarySize(deposit):]

	fee, err := encoding.BigintUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.BigintBinarySize(fee):]

	min, err := encoding.BigintUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.BigintBinarySize(min):]

	canPay, err := encoding.BoolUnmarshalBinary(data)
	if err != nil {
		return err
	}

	c.Symbol = symbol
	c.Name = name
	c.Decimals = uint8(decimals)
	c.Owner = AccountId(owner)
	c.Deposit = deposit
	c.FeeConfig = FeeConfig{TransferFee: fee, MinimumBalance: min, CanPayTxFees: canPay}
	return nil
}

func (s *CoinStats) MarshalBinary() ([]byte, error) {
	var b []byte
	b = append(b, encoding.UvarintMarshalBinary(s.Holders)...)
	b = append(b, encoding.UvarintMarshalBinary(s.Transfers)...)
	b = append(b, encoding.BigintMarshalBinary(s.Minted)...)
	b = append(b, encoding.BigintMarshalBinary(s.Burned)...)
	return b, nil
}

func (s *CoinStats) UnmarshalBinary(data []byte) error {
	holders, err := encoding.UvarintUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.UvarintBinarySize(holders):]

	transfers, err := encoding.UvarintUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.UvarintBinarySize(transfers):]

	minted, err := encoding.BigintUnmarshalBinary(data)
	if err != nil {
		return err
	}
	data = data[encoding.BigintBinarySize(minted):]

	burned, err := encoding.BigintUnmarshalBinary(data)
	if err != nil {
		return err
	}

	s.Holders = holders
	s.Transfers = transfers
	s.Minted = minted
	s.Burned = burned
	return nil
}
