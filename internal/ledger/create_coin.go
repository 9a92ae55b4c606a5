package ledger

import (
	"fmt"

	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

type CreateCoin struct{}

func (CreateCoin) Type() protocol.OperationType { return protocol.OperationTypeCreateCoin }

func (CreateCoin) Execute(st *StateManager, op protocol.Operation) error {
	body, ok := op.(*protocol.CreateCoin)
	if !ok {
		return invalidPayload(new(protocol.CreateCoin), op)
	}

	if uint64(len(body.Symbol)) > st.limits.MaxSymbolLength {
		return protocol.CodeSymbolTooLong.WithFormat("symbol is %d bytes, the limit is %d", len(body.Symbol), st.limits.MaxSymbolLength)
	}
	if uint64(len(body.Name)) > st.limits.MaxNameLength {
		return protocol.CodeNameTooLong.WithFormat("name is %d bytes, the limit is %d", len(body.Name), st.limits.MaxNameLength)
	}
	err := validAmount(body.InitialSupply)
	if err != nil {
		return err
	}
	if body.InitialSupply.Cmp(st.limits.MaxSupply) > 0 {
		return protocol.CodeExceedsMaxSupply.WithFormat("initial supply %v exceeds %v", body.InitialSupply, st.limits.MaxSupply)
	}

	next, err := st.NextCoinId()
	if err != nil {
		return err
	}
	if next >= st.limits.MaxCoins {
		return protocol.CodeTooManyCoins.WithFormat("the limit of %d coins is reached", st.limits.MaxCoins)
	}
	_, taken, err := st.LookupSymbol(body.Symbol)
	if err != nil {
		return err
	}
	if taken {
		return protocol.CodeSymbolAlreadyExists.WithFormat("symbol %q is already registered", body.Symbol)
	}

	// Every check is done. Lock the deposit before the first ledger write so
	// a failed reservation leaves no trace. The reserver's error is passed
	// through as is.
	err = st.reserver.Reserve(body.Caller, st.limits.CoinDeposit)
	if err != nil {
		return fmt.Errorf("reserve deposit: %w", err)
	}

	id, err := st.allocateCoinId()
	if err != nil {
		return err
	}

	info := &protocol.CoinInfo{
		Symbol:   body.Symbol,
		Name:     body.Name,
		Decimals: body.Decimals,
		Owner:    body.Caller,
		Deposit:  st.limits.CoinDeposit,
	}
	err = st.putCoin(id, info)
	if err != nil {
		return err
	}
	err = st.registerSymbol(body.Symbol, id)
	if err != nil {
		return err
	}

	err = st.credit(id, body.Caller, body.InitialSupply)
	if err != nil {
		return err
	}
	err = st.addMinted(id, body.InitialSupply)
	if err != nil {
		return err
	}

	err = st.setMintPermission(id, body.Caller, true)
	if err != nil {
		return err
	}
	for _, m := range body.Minters {
		if m == body.Caller {
			continue
		}
		err = st.setMintPermission(id, m, true)
		if err != nil {
			return err
		}
		st.Record(protocol.MintPermissionSet{CoinId: id, Account: m, CanMint: true})
	}

	st.Record(protocol.CoinCreated{
		CoinId:        id,
		Symbol:        body.Symbol,
		CoinName:      body.Name,
		Creator:       body.Caller,
		InitialSupply: body.InitialSupply,
	})
	return nil
}
