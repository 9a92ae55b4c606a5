package ledger

import (
	"math/big"

	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

type Transfer struct{}

func (Transfer) Type() protocol.OperationType { return protocol.OperationTypeTransfer }

func (Transfer) Execute(st *StateManager, op protocol.Operation) error {
	body, ok := op.(*protocol.Transfer)
	if !ok {
		return invalidPayload(new(protocol.Transfer), op)
	}

	info, err := st.GetCoin(body.CoinId)
	if err != nil {
		return err
	}
	err = validAmount(body.Amount)
	if err != nil {
		return err
	}
	if body.To == body.Caller {
		return protocol.CodeTransferToSelf.With("sender and recipient are the same account")
	}

	// The sender pays amount plus the coin's transfer fee. The fee is
	// burned, not paid to anyone.
	fee := info.FeeConfig.GetTransferFee()
	total := new(big.Int).Add(body.Amount, fee)
	if !protocol.IsUint128(total) {
		return protocol.CodeOverflow.WithFormat("amount plus fee %v exceeds 128 bits", total)
	}

	balance, err := st.BalanceOf(body.CoinId, body.Caller)
	if err != nil {
		return err
	}
	if balance.Cmp(total) < 0 {
		return protocol.CodeInsufficientBalance.WithFormat("balance of %s is %v, want %v", body.Caller, balance, total)
	}

	remaining := new(big.Int).Sub(balance, total)
	min := info.FeeConfig.GetMinimumBalance()
	if remaining.Cmp(min) < 0 {
		return protocol.CodeBelowMinimumBalance.WithFormat("remaining balance %v is below the minimum %v", remaining, min)
	}

	err = st.debit(body.CoinId, body.Caller, total)
	if err != nil {
		return err
	}
	err = st.credit(body.CoinId, body.To, body.Amount)
	if err != nil {
		return err
	}
	err = st.bumpTransfers(body.CoinId)
	if err != nil {
		return err
	}

	if fee.Sign() > 0 {
		err = st.addBurned(body.CoinId, fee)
		if err != nil {
			return err
		}
		st.Record(protocol.Burned{CoinId: body.CoinId, From: body.Caller, Amount: fee})
	}
	st.Record(protocol.TransferRecord{
		CoinId: body.CoinId,
		From:   body.Caller,
		To:     body.To,
		Amount: body.Amount,
	})
	return nil
}
