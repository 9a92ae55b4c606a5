package ledger_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/multicoinnetwork/multicoin/internal/events"
	"gitlab.com/multicoinnetwork/multicoin/internal/ledger"
	"gitlab.com/multicoinnetwork/multicoin/internal/logging"
	"gitlab.com/multicoinnetwork/multicoin/internal/reserve"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
	"gitlab.com/multicoinnetwork/multicoin/storage/memory"
)

const alice = protocol.AccountId("alice")
const bob = protocol.AccountId("bob")
const charlie = protocol.AccountId("charlie")

func amt(v int64) *big.Int { return big.NewInt(v) }

type env struct {
	Executor *ledger.Executor
	Store    *memory.DB
	Book     *reserve.Book
	Events   []events.Event
}

func setup(t *testing.T) *env {
	t.Helper()
	return setupWith(t, ledger.Limits{
		MaxSymbolLength: 32,
		MaxNameLength:   64,
		MaxCoins:        1000,
		CoinDeposit:     amt(10),
		MaxSupply:       big.NewInt(1_000_000_000_000),
	})
}

func setupWith(t *testing.T, limits ledger.Limits) *env {
	t.Helper()

	logger := logging.NewTestLogger(t, "debug")
	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })

	book := reserve.NewBook()
	for _, a := range []protocol.AccountId{alice, bob, charlie} {
		book.Deposit(a, amt(1000))
	}

	e := new(env)
	bus := events.NewBus(logger)
	events.SubscribeSync[events.Event](bus, func(ev events.Event) {
		e.Events = append(e.Events, ev)
	})

	exec, err := ledger.NewExecutor(ledger.ExecutorOptions{
		Store:    store,
		Limits:   limits,
		Reserver: book,
		EventBus: bus,
		Logger:   logger,
	})
	require.NoError(t, err)

	e.Executor = exec
	e.Store = store
	e.Book = book
	return e
}

func createBTC(t *testing.T, e *env, minters ...protocol.AccountId) protocol.CoinId {
	t.Helper()
	err := e.Executor.Execute(&protocol.CreateCoin{
		Caller:        alice,
		Symbol:        "BTC",
		Name:          "Bitcoin",
		Decimals:      8,
		InitialSupply: amt(1000),
		Minters:       minters,
	})
	require.NoError(t, err)

	id, ok := e.Executor.GetCoinIdBySymbol("BTC")
	require.True(t, ok)
	return id
}

func TestCreateCoin(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	require.Equal(t, uint64(0), id)
	require.Equal(t, amt(1000), e.Executor.BalanceOf(id, alice))
	require.Equal(t, amt(1000), e.Executor.TotalSupplyOf(id))
	require.True(t, e.Executor.HasMintPermission(id, alice))

	info := e.Executor.GetCoinMetadata(id)
	require.NotNil(t, info)
	require.Equal(t, "BTC", info.Symbol)
	require.Equal(t, "Bitcoin", info.Name)
	require.Equal(t, uint8(8), info.Decimals)
	require.Equal(t, alice, info.Owner)
	require.Equal(t, amt(10), info.Deposit)

	// The deposit is locked
	require.Equal(t, amt(10), e.Book.Reserved(alice))
	require.Equal(t, amt(990), e.Book.Available(alice))

	require.NotEmpty(t, e.Events)
	created, ok := e.Events[len(e.Events)-1].(protocol.CoinCreated)
	require.True(t, ok)
	require.Equal(t, id, created.CoinId)
	require.Equal(t, alice, created.Creator)
}

func TestCreateCoinSequentialIds(t *testing.T) {
	e := setup(t)
	createBTC(t, e)

	err := e.Executor.Execute(&protocol.CreateCoin{
		Caller:        bob,
		Symbol:        "ETH",
		Name:          "Ethereum",
		Decimals:      18,
		InitialSupply: amt(500),
	})
	require.NoError(t, err)

	id, ok := e.Executor.GetCoinIdBySymbol("ETH")
	require.True(t, ok)
	require.Equal(t, uint64(1), id)
	require.Equal(t, uint64(2), e.Executor.CoinCount())
}

func TestCreateCoinDuplicateSymbol(t *testing.T) {
	e := setup(t)
	createBTC(t, e)

	before := e.Store.Export()
	err := e.Executor.Execute(&protocol.CreateCoin{
		Caller:        bob,
		Symbol:        "BTC",
		Name:          "Bitcoin Again",
		Decimals:      8,
		InitialSupply: amt(1),
	})
	require.ErrorIs(t, err, protocol.CodeSymbolAlreadyExists)

	// A failed operation leaves the store untouched
	require.Equal(t, before, e.Store.Export())
	// And does not lock a deposit
	require.Equal(t, amt(0).String(), e.Book.Reserved(bob).String())
}

func TestCreateCoinValidation(t *testing.T) {
	e := setup(t)

	err := e.Executor.Execute(&protocol.CreateCoin{
		Caller:        alice,
		Symbol:        "THISSYMBOLISWAYTOOLONGFORTHELIMIT",
		Name:          "X",
		InitialSupply: amt(1),
	})
	require.ErrorIs(t, err, protocol.CodeSymbolTooLong)

	err = e.Executor.Execute(&protocol.CreateCoin{
		Caller:        alice,
		Symbol:        "X",
		Name:          strings.Repeat("N", 65),
		InitialSupply: amt(1),
	})
	require.ErrorIs(t, err, protocol.CodeNameTooLong)

	err = e.Executor.Execute(&protocol.CreateCoin{
		Caller:        alice,
		Symbol:        "X",
		Name:          "X",
		InitialSupply: amt(0),
	})
	require.ErrorIs(t, err, protocol.CodeZeroAmount)

	err = e.Executor.Execute(&protocol.CreateCoin{
		Caller:        alice,
		Symbol:        "X",
		Name:          "X",
		InitialSupply: big.NewInt(2_000_000_000_000),
	})
	require.ErrorIs(t, err, protocol.CodeExceedsMaxSupply)
}

func TestCreateCoinLimit(t *testing.T) {
	e := setupWith(t, ledger.Limits{
		MaxSymbolLength: 32,
		MaxNameLength:   64,
		MaxCoins:        1,
		CoinDeposit:     amt(10),
		MaxSupply:       big.NewInt(1_000_000_000_000),
	})
	createBTC(t, e)

	before := e.Store.Export()
	err := e.Executor.Execute(&protocol.CreateCoin{
		Caller:        bob,
		Symbol:        "ETH",
		Name:          "Ethereum",
		InitialSupply: amt(1),
	})
	require.ErrorIs(t, err, protocol.CodeTooManyCoins)
	require.Equal(t, before, e.Store.Export())
	require.Equal(t, uint64(1), e.Executor.CoinCount())
}

func TestCreateCoinExtraMinters(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e, bob)

	require.True(t, e.Executor.HasMintPermission(id, alice))
	require.True(t, e.Executor.HasMintPermission(id, bob))
	require.False(t, e.Executor.HasMintPermission(id, charlie))
}

func TestTransfer(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.Transfer{
		Caller: alice,
		CoinId: id,
		To:     bob,
		Amount: amt(300),
	})
	require.NoError(t, err)

	require.Equal(t, amt(700), e.Executor.BalanceOf(id, alice))
	require.Equal(t, amt(300), e.Executor.BalanceOf(id, bob))
	// Conservation: a transfer never changes the supply
	require.Equal(t, amt(1000), e.Executor.TotalSupplyOf(id))

	stats := e.Executor.GetCoinStats(id)
	require.Equal(t, uint64(2), stats.Holders)
	require.Equal(t, uint64(1), stats.Transfers)
}

func TestTransferFailures(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: 99, To: bob, Amount: amt(1)})
	require.ErrorIs(t, err, protocol.CodeCoinNotFound)

	err = e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: id, To: bob, Amount: amt(0)})
	require.ErrorIs(t, err, protocol.CodeZeroAmount)

	err = e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: id, To: alice, Amount: amt(1)})
	require.ErrorIs(t, err, protocol.CodeTransferToSelf)

	before := e.Store.Export()
	err = e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: id, To: bob, Amount: amt(2000)})
	require.ErrorIs(t, err, protocol.CodeInsufficientBalance)
	require.Equal(t, before, e.Store.Export())
}

func TestTransferWholeBalance(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: id, To: bob, Amount: amt(1000)})
	require.NoError(t, err)

	require.Equal(t, amt(0), e.Executor.BalanceOf(id, alice))
	require.Equal(t, amt(1000), e.Executor.BalanceOf(id, bob))
	// Alice's emptied balance no longer counts her as a holder
	require.Equal(t, uint64(1), e.Executor.GetCoinStats(id).Holders)
}

func TestMint(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.Mint{Caller: alice, CoinId: id, To: bob, Amount: amt(500)})
	require.NoError(t, err)

	require.Equal(t, amt(500), e.Executor.BalanceOf(id, bob))
	require.Equal(t, amt(1500), e.Executor.TotalSupplyOf(id))
	require.Equal(t, amt(1500), e.Executor.GetCoinStats(id).Minted)
}

func TestMintRequiresPermission(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.Mint{Caller: bob, CoinId: id, To: bob, Amount: amt(1)})
	require.ErrorIs(t, err, protocol.CodeNoMintPermission)

	// Granting permission makes the same mint succeed
	err = e.Executor.Execute(&protocol.SetMintPermission{Caller: alice, CoinId: id, Account: bob, CanMint: true})
	require.NoError(t, err)
	require.True(t, e.Executor.HasMintPermission(id, bob))

	err = e.Executor.Execute(&protocol.Mint{Caller: bob, CoinId: id, To: bob, Amount: amt(1)})
	require.NoError(t, err)

	// And revoking it makes the mint fail again
	err = e.Executor.Execute(&protocol.SetMintPermission{Caller: alice, CoinId: id, Account: bob, CanMint: false})
	require.NoError(t, err)

	err = e.Executor.Execute(&protocol.Mint{Caller: bob, CoinId: id, To: bob, Amount: amt(1)})
	require.ErrorIs(t, err, protocol.CodeNoMintPermission)
}

func TestMintExceedsMaxSupply(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	before := e.Store.Export()
	err := e.Executor.Execute(&protocol.Mint{Caller: alice, CoinId: id, To: bob, Amount: big.NewInt(1_000_000_000_000)})
	require.ErrorIs(t, err, protocol.CodeExceedsMaxSupply)
	require.Equal(t, before, e.Store.Export())
}

func TestBurn(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.Burn{Caller: alice, CoinId: id, Amount: amt(400)})
	require.NoError(t, err)

	require.Equal(t, amt(600), e.Executor.BalanceOf(id, alice))
	require.Equal(t, amt(600), e.Executor.TotalSupplyOf(id))
	require.Equal(t, amt(400), e.Executor.GetCoinStats(id).Burned)

	err = e.Executor.Execute(&protocol.Burn{Caller: alice, CoinId: id, Amount: amt(601)})
	require.ErrorIs(t, err, protocol.CodeInsufficientBalance)
}

func TestTransferOwnership(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.TransferOwnership{Caller: bob, CoinId: id, NewOwner: bob})
	require.ErrorIs(t, err, protocol.CodeNotAuthorized)

	err = e.Executor.Execute(&protocol.TransferOwnership{Caller: alice, CoinId: id, NewOwner: bob})
	require.NoError(t, err)

	info := e.Executor.GetCoinMetadata(id)
	require.Equal(t, bob, info.Owner)

	// Mint permission follows ownership
	require.False(t, e.Executor.HasMintPermission(id, alice))
	require.True(t, e.Executor.HasMintPermission(id, bob))

	// The old owner may no longer administer the coin
	err = e.Executor.Execute(&protocol.SetMintPermission{Caller: alice, CoinId: id, Account: alice, CanMint: true})
	require.ErrorIs(t, err, protocol.CodeNotAuthorized)
}

func TestTransferOwnershipToSelf(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.TransferOwnership{Caller: alice, CoinId: id, NewOwner: alice})
	require.NoError(t, err)
	require.True(t, e.Executor.HasMintPermission(id, alice))
}

func TestTransferFee(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.SetFeeConfig{
		Caller:      alice,
		CoinId:      id,
		TransferFee: amt(5),
	})
	require.NoError(t, err)

	err = e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: id, To: bob, Amount: amt(100)})
	require.NoError(t, err)

	// The sender pays amount plus fee and the fee is burned
	require.Equal(t, amt(895), e.Executor.BalanceOf(id, alice))
	require.Equal(t, amt(100), e.Executor.BalanceOf(id, bob))
	require.Equal(t, amt(995), e.Executor.TotalSupplyOf(id))
	require.Equal(t, amt(5), e.Executor.GetCoinStats(id).Burned)
}

func TestMinimumBalance(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.SetFeeConfig{
		Caller:         alice,
		CoinId:         id,
		MinimumBalance: amt(100),
	})
	require.NoError(t, err)

	// Leaving 50 behind violates the minimum
	err = e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: id, To: bob, Amount: amt(950)})
	require.ErrorIs(t, err, protocol.CodeBelowMinimumBalance)

	// So does emptying the balance, the check has no zero exemption
	err = e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: id, To: bob, Amount: amt(1000)})
	require.ErrorIs(t, err, protocol.CodeBelowMinimumBalance)
	require.Equal(t, amt(1000), e.Executor.BalanceOf(id, alice))

	// Leaving exactly the minimum is allowed
	err = e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: id, To: bob, Amount: amt(900)})
	require.NoError(t, err)
	require.Equal(t, amt(100), e.Executor.BalanceOf(id, alice))
}

func TestSetFeeConfigNotOwner(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.SetFeeConfig{Caller: bob, CoinId: id, TransferFee: amt(1)})
	require.ErrorIs(t, err, protocol.CodeNotAuthorized)
}

func TestPreferredFeeCoin(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	// The coin is not fee-eligible yet
	err := e.Executor.Execute(&protocol.SetPreferredFeeCoin{Caller: bob, CoinId: &id})
	require.ErrorIs(t, err, protocol.CodeCannotPayFees)

	err = e.Executor.Execute(&protocol.SetFeeConfig{Caller: alice, CoinId: id, CanPayTxFees: true})
	require.NoError(t, err)

	err = e.Executor.Execute(&protocol.SetPreferredFeeCoin{Caller: bob, CoinId: &id})
	require.NoError(t, err)
	got := e.Executor.PreferredFeeCoin(bob)
	require.NotNil(t, got)
	require.Equal(t, id, *got)

	// Clearing the preference
	err = e.Executor.Execute(&protocol.SetPreferredFeeCoin{Caller: bob, CoinId: nil})
	require.NoError(t, err)
	require.Nil(t, e.Executor.PreferredFeeCoin(bob))
}

func TestBalances(t *testing.T) {
	e := setup(t)
	id := createBTC(t, e)

	err := e.Executor.Execute(&protocol.Transfer{Caller: alice, CoinId: id, To: bob, Amount: amt(300)})
	require.NoError(t, err)

	balances := e.Executor.Balances(id)
	require.Equal(t, map[protocol.AccountId]*big.Int{
		alice: amt(700),
		bob:   amt(300),
	}, balances)
}

func TestQueriesOnUnknownCoin(t *testing.T) {
	e := setup(t)

	require.Equal(t, amt(0), e.Executor.BalanceOf(7, alice))
	require.Equal(t, amt(0), e.Executor.TotalSupplyOf(7))
	require.Nil(t, e.Executor.GetCoinMetadata(7))
	require.False(t, e.Executor.HasMintPermission(7, alice))
	_, ok := e.Executor.GetCoinIdBySymbol("NOPE")
	require.False(t, ok)

	stats := e.Executor.GetCoinStats(7)
	require.Zero(t, stats.Holders)
	require.Zero(t, stats.Transfers)
}

func TestCreateCoinInsufficientDeposit(t *testing.T) {
	e := setup(t)

	poor := protocol.AccountId("poor")
	before := e.Store.Export()
	err := e.Executor.Execute(&protocol.CreateCoin{
		Caller:        poor,
		Symbol:        "X",
		Name:          "X",
		InitialSupply: amt(1),
	})
	require.ErrorIs(t, err, reserve.ErrInsufficientFunds)
	require.Equal(t, before, e.Store.Export())
}
