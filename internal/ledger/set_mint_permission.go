package ledger

import (
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

type SetMintPermission struct{}

func (SetMintPermission) Type() protocol.OperationType {
	return protocol.OperationTypeSetMintPermission
}

func (SetMintPermission) Execute(st *StateManager, op protocol.Operation) error {
	body, ok := op.(*protocol.SetMintPermission)
	if !ok {
		return invalidPayload(new(protocol.SetMintPermission), op)
	}

	info, err := st.GetCoin(body.CoinId)
	if err != nil {
		return err
	}
	if info.Owner != body.Caller {
		return protocol.CodeNotAuthorized.WithFormat("%s is not the owner of coin %d", body.Caller, body.CoinId)
	}

	err = st.setMintPermission(body.CoinId, body.Account, body.CanMint)
	if err != nil {
		return err
	}

	st.Record(protocol.MintPermissionSet{CoinId: body.CoinId, Account: body.Account, CanMint: body.CanMint})
	return nil
}
