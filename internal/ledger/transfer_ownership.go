package ledger

import (
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

type TransferOwnership struct{}

func (TransferOwnership) Type() protocol.OperationType {
	return protocol.OperationTypeTransferOwnership
}

func (TransferOwnership) Execute(st *StateManager, op protocol.Operation) error {
	body, ok := op.(*protocol.TransferOwnership)
	if !ok {
		return invalidPayload(new(protocol.TransferOwnership), op)
	}

	info, err := st.GetCoin(body.CoinId)
	if err != nil {
		return err
	}
	if info.Owner != body.Caller {
		return protocol.CodeNotAuthorized.WithFormat("%s is not the owner of coin %d", body.Caller, body.CoinId)
	}

	old := info.Owner
	info.Owner = body.NewOwner
	err = st.putCoin(body.CoinId, info)
	if err != nil {
		return err
	}

	// Mint permission follows ownership. Revoke the old owner's first so a
	// transfer to self keeps the grant.
	err = st.setMintPermission(body.CoinId, old, false)
	if err != nil {
		return err
	}
	err = st.setMintPermission(body.CoinId, body.NewOwner, true)
	if err != nil {
		return err
	}

	st.Record(protocol.OwnershipTransferred{CoinId: body.CoinId, OldOwner: old, NewOwner: body.NewOwner})
	return nil
}
