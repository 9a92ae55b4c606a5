package ledger

import (
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

type SetPreferredFeeCoin struct{}

func (SetPreferredFeeCoin) Type() protocol.OperationType {
	return protocol.OperationTypeSetPreferredFeeCoin
}

func (SetPreferredFeeCoin) Execute(st *StateManager, op protocol.Operation) error {
	body, ok := op.(*protocol.SetPreferredFeeCoin)
	if !ok {
		return invalidPayload(new(protocol.SetPreferredFeeCoin), op)
	}

	if body.CoinId != nil {
		info, err := st.GetCoin(*body.CoinId)
		if err != nil {
			return err
		}
		if !info.FeeConfig.CanPayTxFees {
			return protocol.CodeCannotPayFees.WithFormat("coin %d may not pay transaction fees", *body.CoinId)
		}
	}

	err := st.setPreferredFeeCoin(body.Caller, body.CoinId)
	if err != nil {
		return err
	}

	st.Record(protocol.PreferredFeeCoinSet{Account: body.Caller, CoinId: body.CoinId})
	return nil
}
