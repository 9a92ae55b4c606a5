package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/multicoinnetwork/multicoin/config"
)

var cmdInit = &cobra.Command{
	Use:   "init",
	Short: "Initialize the working directory",
	Args:  cobra.NoArgs,
	Run:   initWorkDir,
}

var flagInit struct {
	Storage string
}

func init() {
	cmdMain.AddCommand(cmdInit)
	cmdInit.Flags().StringVar(&flagInit.Storage, "storage", "badger", "Storage backend, memory or badger")
}

func initWorkDir(*cobra.Command, []string) {
	c := config.Default()
	c.Storage = config.StorageType(flagInit.Storage)
	switch c.Storage {
	case config.MemoryStorage, config.BadgerStorage:
		// Ok
	default:
		fatalf("unknown storage type %q", flagInit.Storage)
	}

	err := config.Store(flagMain.WorkDir, c)
	checkf(err, "init %q", flagMain.WorkDir)
}
