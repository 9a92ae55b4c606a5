package ledger

import (
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

type SetFeeConfig struct{}

func (SetFeeConfig) Type() protocol.OperationType { return protocol.OperationTypeSetFeeConfig }

func (SetFeeConfig) Execute(st *StateManager, op protocol.Operation) error {
	body, ok := op.(*protocol.SetFeeConfig)
	if !ok {
		return invalidPayload(new(protocol.SetFeeConfig), op)
	}

	info, err := st.GetCoin(body.CoinId)
	if err != nil {
		return err
	}
	if info.Owner != body.Caller {
		return protocol.CodeNotAuthorized.WithFormat("%s is not the owner of coin %d", body.Caller, body.CoinId)
	}

	// Nil fee fields mean zero. Negative or oversized values are rejected.
	if body.TransferFee != nil && !protocol.IsUint128(body.TransferFee) {
		return protocol.CodeOverflow.WithFormat("%v is not an unsigned 128-bit amount", body.TransferFee)
	}
	if body.MinimumBalance != nil && !protocol.IsUint128(body.MinimumBalance) {
		return protocol.CodeOverflow.WithFormat("%v is not an unsigned 128-bit amount", body.MinimumBalance)
	}

	info.FeeConfig = protocol.FeeConfig{
		TransferFee:    body.TransferFee,
		MinimumBalance: body.MinimumBalance,
		CanPayTxFees:   body.CanPayTxFees,
	}
	err = st.putCoin(body.CoinId, info)
	if err != nil {
		return err
	}

	st.Record(protocol.FeeConfigUpdated{
		CoinId:         body.CoinId,
		TransferFee:    body.TransferFee,
		MinimumBalance: body.MinimumBalance,
		CanPayTxFees:   body.CanPayTxFees,
	})
	return nil
}
