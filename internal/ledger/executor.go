// Package ledger implements the multi-asset ledger core: the coin registry,
// balances, supplies, permissions, and the operations that mutate them.
//
// Every mutating operation runs inside a single storage batch. If any step
// fails the batch is discarded, so a failed operation leaves no trace in the
// store. Events are published only after the batch commits.
package ledger

import (
	"errors"
	"fmt"
	"sync"

	"gitlab.com/multicoinnetwork/multicoin/internal/events"
	"gitlab.com/multicoinnetwork/multicoin/internal/logging"
	"gitlab.com/multicoinnetwork/multicoin/internal/reserve"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
	"gitlab.com/multicoinnetwork/multicoin/storage"
)

// operationExecutor handles one operation type.
type operationExecutor interface {
	Type() protocol.OperationType
	Execute(st *StateManager, op protocol.Operation) error
}

type ExecutorOptions struct {
	Store    storage.KeyValueStore
	Limits   Limits
	Reserver reserve.Reserver
	EventBus *events.Bus
	Logger   logging.Logger
}

// Executor applies operations to the ledger. Mutations are serialized; reads
// run concurrently against store snapshots.
type Executor struct {
	opts      ExecutorOptions
	logger    logging.OptionalLogger
	mu        sync.Mutex
	executors map[protocol.OperationType]operationExecutor
}

func NewExecutor(opts ExecutorOptions) (*Executor, error) {
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}
	if opts.Reserver == nil {
		return nil, errors.New("reserver is required")
	}
	if opts.Limits.CoinDeposit == nil || opts.Limits.MaxSupply == nil {
		return nil, errors.New("limits are incomplete")
	}

	x := new(Executor)
	x.opts = opts
	x.logger.Set(opts.Logger, "module", "executor")

	x.executors = map[protocol.OperationType]operationExecutor{}
	for _, exec := range []operationExecutor{
		CreateCoin{},
		Transfer{},
		Mint{},
		Burn{},
		TransferOwnership{},
		SetMintPermission{},
		SetFeeConfig{},
		SetPreferredFeeCoin{},
	} {
		if _, ok := x.executors[exec.Type()]; ok {
			return nil, fmt.Errorf("duplicate executor for %v", exec.Type())
		}
		x.executors[exec.Type()] = exec
	}
	return x, nil
}

// Execute applies one operation. Either every effect of the operation is
// committed or none is.
func (x *Executor) Execute(op protocol.Operation) error {
	exec, ok := x.executors[op.Type()]
	if !ok {
		return fmt.Errorf("unsupported operation %v", op.Type())
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	batch := x.opts.Store.Begin(true)
	st := NewStateManager(batch, x.opts.Limits, x.opts.Reserver, x.logger.L)
	defer st.Discard()

	err := exec.Execute(st, op)
	if err != nil {
		x.logger.Debug("Operation failed", "type", op.Type(), "error", err)
		return err
	}

	err = st.Commit()
	if err != nil {
		return fmt.Errorf("commit %v: %w", op.Type(), err)
	}

	if x.opts.EventBus != nil {
		for _, e := range st.Events() {
			x.opts.EventBus.Publish(e)
		}
	}
	x.logger.Debug("Executed", "type", op.Type())
	return nil
}
