package ledger

import (
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

type Burn struct{}

func (Burn) Type() protocol.OperationType { return protocol.OperationTypeBurn }

func (Burn) Execute(st *StateManager, op protocol.Operation) error {
	body, ok := op.(*protocol.Burn)
	if !ok {
		return invalidPayload(new(protocol.Burn), op)
	}

	_, err := st.GetCoin(body.CoinId)
	if err != nil {
		return err
	}
	err = validAmount(body.Amount)
	if err != nil {
		return err
	}

	// Anyone may burn their own coins.
	err = st.debit(body.CoinId, body.Caller, body.Amount)
	if err != nil {
		return err
	}
	err = st.addBurned(body.CoinId, body.Amount)
	if err != nil {
		return err
	}

	st.Record(protocol.Burned{CoinId: body.CoinId, From: body.Caller, Amount: body.Amount})
	return nil
}
