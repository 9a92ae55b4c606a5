package ledger

import (
	"fmt"
	"math/big"

	"gitlab.com/multicoinnetwork/multicoin/config"
	"gitlab.com/multicoinnetwork/multicoin/internal/events"
	"gitlab.com/multicoinnetwork/multicoin/internal/logging"
	"gitlab.com/multicoinnetwork/multicoin/internal/reserve"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
	"gitlab.com/multicoinnetwork/multicoin/storage"
)

// Limits are the ledger's initialization constants. They never change after
// the executor is constructed.
type Limits struct {
	MaxSymbolLength uint64
	MaxNameLength   uint64
	MaxCoins        uint64
	CoinDeposit     *big.Int
	MaxSupply       *big.Int
}

// LimitsFromConfig parses the limit fields of a config.
func LimitsFromConfig(c *config.Config) (Limits, error) {
	deposit, err := c.CoinDepositAmount()
	if err != nil {
		return Limits{}, err
	}
	maxSupply, err := c.MaxSupplyAmount()
	if err != nil {
		return Limits{}, err
	}
	return Limits{
		MaxSymbolLength: c.MaxSymbolLength,
		MaxNameLength:   c.MaxNameLength,
		MaxCoins:        c.MaxCoins,
		CoinDeposit:     deposit,
		MaxSupply:       maxSupply,
	}, nil
}

// StateManager stages the writes of a single operation. Every write goes
// into the underlying batch; nothing is visible to other readers until
// Commit, and Discard drops everything.
type StateManager struct {
	logger   logging.OptionalLogger
	batch    storage.KeyValueTxn
	limits   Limits
	reserver reserve.Reserver
	events   []events.Event
}

func NewStateManager(batch storage.KeyValueTxn, limits Limits, reserver reserve.Reserver, logger logging.Logger) *StateManager {
	st := new(StateManager)
	st.batch = batch
	st.limits = limits
	st.reserver = reserver
	st.logger.L = logger
	return st
}

// Commit applies every staged write.
func (st *StateManager) Commit() error {
	return st.batch.Commit()
}

// Discard drops every staged write. Safe to call after Commit.
func (st *StateManager) Discard() {
	st.batch.Discard()
}

// Record queues an event for publication after a successful commit.
func (st *StateManager) Record(e events.Event) {
	st.events = append(st.events, e)
}

// Events returns the queued events.
func (st *StateManager) Events() []events.Event {
	return st.events
}

// validAmount rejects nil, zero, negative, and over-128-bit amounts.
func validAmount(v *big.Int) error {
	if v == nil || v.Sign() == 0 {
		return protocol.CodeZeroAmount.With("amount is zero")
	}
	if !protocol.IsUint128(v) {
		return protocol.CodeOverflow.WithFormat("%v is not an unsigned 128-bit amount", v)
	}
	return nil
}

// invalidPayload builds the error for an operation body of the wrong type.
func invalidPayload(want, got protocol.Operation) error {
	return fmt.Errorf("invalid payload: want %T, got %T", want, got)
}
