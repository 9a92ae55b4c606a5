package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

var cmdCreate = &cobra.Command{
	Use:   "create <caller> <symbol> <name> <decimals> <initial-supply> [minter...]",
	Short: "Create a new coin",
	Args:  cobra.MinimumNArgs(5),
	Run:   createCoin,
}

var cmdTransfer = &cobra.Command{
	Use:   "transfer <caller> <coin> <to> <amount>",
	Short: "Transfer coins to another account",
	Args:  cobra.ExactArgs(4),
	Run:   transfer,
}

var cmdMint = &cobra.Command{
	Use:   "mint <caller> <coin> <to> <amount>",
	Short: "Mint coins for an account",
	Args:  cobra.ExactArgs(4),
	Run:   mint,
}

var cmdBurn = &cobra.Command{
	Use:   "burn <caller> <coin> <amount>",
	Short: "Burn coins from the caller's balance",
	Args:  cobra.ExactArgs(3),
	Run:   burn,
}

var cmdOwner = &cobra.Command{
	Use:   "owner <caller> <coin> <new-owner>",
	Short: "Transfer ownership of a coin",
	Args:  cobra.ExactArgs(3),
	Run:   transferOwnership,
}

var cmdPermit = &cobra.Command{
	Use:   "permit <caller> <coin> <account> <true|false>",
	Short: "Grant or revoke mint permission",
	Args:  cobra.ExactArgs(4),
	Run:   setMintPermission,
}

var cmdFee = &cobra.Command{
	Use:   "fee",
	Short: "Manage fee settings",
	Run:   printUsageAndExit1,
}

var cmdFeeSet = &cobra.Command{
	Use:   "set <caller> <coin> <transfer-fee> <minimum-balance> <can-pay-tx-fees>",
	Short: "Replace a coin's fee policy",
	Args:  cobra.ExactArgs(5),
	Run:   setFeeConfig,
}

var cmdFeeCoin = &cobra.Command{
	Use:   "coin <caller> <coin|none>",
	Short: "Set or clear the caller's preferred fee coin",
	Args:  cobra.ExactArgs(2),
	Run:   setPreferredFeeCoin,
}

func init() {
	cmdMain.AddCommand(cmdCreate, cmdTransfer, cmdMint, cmdBurn, cmdOwner, cmdPermit, cmdFee)
	cmdFee.AddCommand(cmdFeeSet, cmdFeeCoin)
}

func createCoin(_ *cobra.Command, args []string) {
	exec, book, close := loadExecutor()
	defer close()

	caller := protocol.AccountId(args[0])
	var minters []protocol.AccountId
	for _, m := range args[5:] {
		minters = append(minters, protocol.AccountId(m))
	}

	decimals, err := parseDecimals(args[3])
	check(err)

	// Fund the creation deposit. A real host charges the caller's native
	// balance instead.
	book.Deposit(caller, exec.CoinDeposit())

	err = exec.Execute(&protocol.CreateCoin{
		Caller:        caller,
		Symbol:        args[1],
		Name:          args[2],
		Decimals:      decimals,
		InitialSupply: parseAmount(args[4]),
		Minters:       minters,
	})
	check(err)
}

func transfer(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	err := exec.Execute(&protocol.Transfer{
		Caller: protocol.AccountId(args[0]),
		CoinId: parseCoinId(args[1]),
		To:     protocol.AccountId(args[2]),
		Amount: parseAmount(args[3]),
	})
	check(err)
}

func mint(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	err := exec.Execute(&protocol.Mint{
		Caller: protocol.AccountId(args[0]),
		CoinId: parseCoinId(args[1]),
		To:     protocol.AccountId(args[2]),
		Amount: parseAmount(args[3]),
	})
	check(err)
}

func burn(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	err := exec.Execute(&protocol.Burn{
		Caller: protocol.AccountId(args[0]),
		CoinId: parseCoinId(args[1]),
		Amount: parseAmount(args[2]),
	})
	check(err)
}

func transferOwnership(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	err := exec.Execute(&protocol.TransferOwnership{
		Caller:   protocol.AccountId(args[0]),
		CoinId:   parseCoinId(args[1]),
		NewOwner: protocol.AccountId(args[2]),
	})
	check(err)
}

func setMintPermission(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	err := exec.Execute(&protocol.SetMintPermission{
		Caller:  protocol.AccountId(args[0]),
		CoinId:  parseCoinId(args[1]),
		Account: protocol.AccountId(args[2]),
		CanMint: parseBool(args[3]),
	})
	check(err)
}

func setFeeConfig(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	err := exec.Execute(&protocol.SetFeeConfig{
		Caller:         protocol.AccountId(args[0]),
		CoinId:         parseCoinId(args[1]),
		TransferFee:    parseAmount(args[2]),
		MinimumBalance: parseAmount(args[3]),
		CanPayTxFees:   parseBool(args[4]),
	})
	check(err)
}

func setPreferredFeeCoin(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	var id *protocol.CoinId
	if args[1] != "none" {
		v := parseCoinId(args[1])
		id = &v
	}

	err := exec.Execute(&protocol.SetPreferredFeeCoin{
		Caller: protocol.AccountId(args[0]),
		CoinId: id,
	})
	check(err)
}
