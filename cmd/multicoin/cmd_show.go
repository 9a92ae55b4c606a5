package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

var cmdShow = &cobra.Command{
	Use:   "show",
	Short: "Query the ledger",
	Run:   printUsageAndExit1,
}

var cmdShowCoin = &cobra.Command{
	Use:   "coin <id|symbol>",
	Short: "Show a coin's metadata",
	Args:  cobra.ExactArgs(1),
	Run:   showCoin,
}

var cmdShowBalance = &cobra.Command{
	Use:   "balance <coin> <account>",
	Short: "Show an account's balance",
	Args:  cobra.ExactArgs(2),
	Run:   showBalance,
}

var cmdShowSupply = &cobra.Command{
	Use:   "supply <coin>",
	Short: "Show a coin's circulating supply",
	Args:  cobra.ExactArgs(1),
	Run:   showSupply,
}

var cmdShowHolders = &cobra.Command{
	Use:   "holders <coin>",
	Short: "List every account holding a coin",
	Args:  cobra.ExactArgs(1),
	Run:   showHolders,
}

var cmdShowStats = &cobra.Command{
	Use:   "stats <coin>",
	Short: "Show a coin's counters",
	Args:  cobra.ExactArgs(1),
	Run:   showStats,
}

func init() {
	cmdMain.AddCommand(cmdShow)
	cmdShow.AddCommand(cmdShowCoin, cmdShowBalance, cmdShowSupply, cmdShowHolders, cmdShowStats)
}

func showCoin(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		// Not a number, resolve as a symbol
		var ok bool
		id, ok = exec.GetCoinIdBySymbol(args[0])
		if !ok {
			fatalf("no coin with symbol %q", args[0])
		}
	}

	info := exec.GetCoinMetadata(id)
	if info == nil {
		fatalf("no coin with id %d", id)
	}

	fmt.Printf("Coin      %d\n", id)
	fmt.Printf("Symbol    %s\n", info.Symbol)
	fmt.Printf("Name      %s\n", info.Name)
	fmt.Printf("Decimals  %d\n", info.Decimals)
	fmt.Printf("Owner     %s\n", info.Owner)
	fmt.Printf("Deposit   %v\n", info.Deposit)
	fmt.Printf("Fees      transfer=%v minimum=%v can-pay-tx-fees=%v\n",
		info.FeeConfig.GetTransferFee(), info.FeeConfig.GetMinimumBalance(), info.FeeConfig.CanPayTxFees)
	fmt.Printf("Supply    %v\n", exec.TotalSupplyOf(id))
}

func showBalance(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	id := parseCoinId(args[0])
	fmt.Println(exec.BalanceOf(id, protocol.AccountId(args[1])))
}

func showSupply(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	fmt.Println(exec.TotalSupplyOf(parseCoinId(args[0])))
}

func showHolders(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	for account, balance := range exec.Balances(parseCoinId(args[0])) {
		fmt.Printf("%s\t%v\n", account, balance)
	}
}

func showStats(_ *cobra.Command, args []string) {
	exec, _, close := loadExecutor()
	defer close()

	s := exec.GetCoinStats(parseCoinId(args[0]))
	fmt.Printf("Holders    %d\n", s.Holders)
	fmt.Printf("Transfers  %d\n", s.Transfers)
	fmt.Printf("Minted     %v\n", s.Minted)
	fmt.Printf("Burned     %v\n", s.Burned)
}
