package ledger

import (
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

type Mint struct{}

func (Mint) Type() protocol.OperationType { return protocol.OperationTypeMint }

func (Mint) Execute(st *StateManager, op protocol.Operation) error {
	body, ok := op.(*protocol.Mint)
	if !ok {
		return invalidPayload(new(protocol.Mint), op)
	}

	_, err := st.GetCoin(body.CoinId)
	if err != nil {
		return err
	}
	err = validAmount(body.Amount)
	if err != nil {
		return err
	}

	can, err := st.CanMint(body.CoinId, body.Caller)
	if err != nil {
		return err
	}
	if !can {
		return protocol.CodeNoMintPermission.WithFormat("%s may not mint coin %d", body.Caller, body.CoinId)
	}

	err = st.credit(body.CoinId, body.To, body.Amount)
	if err != nil {
		return err
	}
	err = st.addMinted(body.CoinId, body.Amount)
	if err != nil {
		return err
	}

	st.Record(protocol.Minted{CoinId: body.CoinId, To: body.To, Amount: body.Amount})
	return nil
}
