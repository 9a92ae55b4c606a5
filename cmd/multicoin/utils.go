package main

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"

	"gitlab.com/multicoinnetwork/multicoin/config"
	"gitlab.com/multicoinnetwork/multicoin/internal/events"
	"gitlab.com/multicoinnetwork/multicoin/internal/ledger"
	"gitlab.com/multicoinnetwork/multicoin/internal/logging"
	"gitlab.com/multicoinnetwork/multicoin/internal/reserve"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
	"gitlab.com/multicoinnetwork/multicoin/storage"
	"gitlab.com/multicoinnetwork/multicoin/storage/badger"
	"gitlab.com/multicoinnetwork/multicoin/storage/memory"
)

// namedEvent is implemented by every ledger event.
type namedEvent interface {
	Name() string
}

// loadExecutor opens the working directory's store and builds an executor.
// The returned func closes the store.
func loadExecutor() (*ledger.Executor, *reserve.Book, func()) {
	c, err := config.Load(flagMain.WorkDir)
	checkf(err, "load %q", flagMain.WorkDir)

	logger, err := logging.NewLogger(os.Stderr, c.LogLevel, false)
	checkf(err, "initialize logging")

	var store storage.KeyValueStore
	switch c.Storage {
	case config.MemoryStorage:
		store = memory.New()
	case config.BadgerStorage:
		store, err = badger.New(filepath.Join(flagMain.WorkDir, c.DatabasePath), logger)
		checkf(err, "open database")
	default:
		fatalf("unknown storage type %q", c.Storage)
	}

	limits, err := ledger.LimitsFromConfig(c)
	checkf(err, "load limits")

	// The CLI stands in for the host currency system, so it keeps its own
	// reserve book. Callers are funded on demand before a create.
	book := reserve.NewBook()

	bus := events.NewBus(logger)
	events.SubscribeSync[events.Event](bus, func(e events.Event) {
		ne, ok := e.(namedEvent)
		if !ok {
			return
		}
		logger.Info("Event", "name", ne.Name(), "record", fmt.Sprintf("%+v", e))
	})

	exec, err := ledger.NewExecutor(ledger.ExecutorOptions{
		Store:    store,
		Limits:   limits,
		Reserver: book,
		EventBus: bus,
		Logger:   logger,
	})
	check(err)

	return exec, book, func() { _ = store.Close() }
}

func parseCoinId(s string) protocol.CoinId {
	id, err := strconv.ParseUint(s, 10, 64)
	checkf(err, "coin id %q", s)
	return id
}

// parseDecimals rejects values outside 0-255 instead of truncating.
func parseDecimals(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("decimals %q: %w", s, err)
	}
	return uint8(v), nil
}

func parseAmount(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		fatalf("amount %q is not a decimal number", s)
	}
	return v
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(s)
	checkf(err, "boolean %q", s)
	return v
}
