package reserve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/multicoinnetwork/multicoin/internal/reserve"
)

func TestReserve(t *testing.T) {
	book := reserve.NewBook()
	book.Deposit("alice", big.NewInt(100))

	require.NoError(t, book.Reserve("alice", big.NewInt(30)))
	require.Equal(t, "70", book.Available("alice").String())
	require.Equal(t, "30", book.Reserved("alice").String())

	// A failed reservation leaves the account untouched
	err := book.Reserve("alice", big.NewInt(71))
	require.ErrorIs(t, err, reserve.ErrInsufficientFunds)
	require.Equal(t, "70", book.Available("alice").String())

	err = book.Reserve("nobody", big.NewInt(1))
	require.ErrorIs(t, err, reserve.ErrInsufficientFunds)
}
