package config

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/spf13/viper"
	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

const configFile = "multicoin.toml"

type StorageType string

const (
	MemoryStorage StorageType = "memory"
	BadgerStorage StorageType = "badger"
)

// Config holds the ledger's initialization constants and runtime settings.
// The limit fields are immutable once the executor is constructed.
type Config struct {
	Storage      StorageType `toml:"storage" mapstructure:"storage"`
	DatabasePath string      `toml:"database-path" mapstructure:"database-path"`
	LogLevel     string      `toml:"log-level" mapstructure:"log-level"`

	MaxSymbolLength uint64 `toml:"max-symbol-length" mapstructure:"max-symbol-length"`
	MaxNameLength   uint64 `toml:"max-name-length" mapstructure:"max-name-length"`
	MaxCoins        uint64 `toml:"max-coins" mapstructure:"max-coins"`

	// CoinDeposit and MaxSupply are decimal strings because they may exceed
	// 64 bits.
	CoinDeposit string `toml:"coin-deposit" mapstructure:"coin-deposit"`
	MaxSupply   string `toml:"max-supply" mapstructure:"max-supply"`
}

func Default() *Config {
	return &Config{
		Storage:         BadgerStorage,
		DatabasePath:    "data",
		LogLevel:        "info",
		MaxSymbolLength: 32,
		MaxNameLength:   64,
		MaxCoins:        1000,
		CoinDeposit:     "10",
		MaxSupply:       "1000000000000",
	}
}

// CoinDepositAmount parses the coin deposit.
func (c *Config) CoinDepositAmount() (*big.Int, error) {
	return c.amount("coin-deposit", c.CoinDeposit)
}

// MaxSupplyAmount parses the supply ceiling.
func (c *Config) MaxSupplyAmount() (*big.Int, error) {
	return c.amount("max-supply", c.MaxSupply)
}

func (c *Config) amount(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not a decimal number", name, s)
	}
	if !protocol.IsUint128(v) {
		return nil, fmt.Errorf("%s: %q does not fit in 128 bits", name, s)
	}
	return v, nil
}

// Load reads multicoin.toml from the given directory.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, configFile))
	v.SetConfigType("toml")

	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	c := new(Config)
	err = v.Unmarshal(c)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	switch c.Storage {
	case MemoryStorage, BadgerStorage:
		// Ok
	default:
		return nil, fmt.Errorf("load config: unknown storage type %q", c.Storage)
	}
	return c, nil
}

// Store writes the config as multicoin.toml into the given directory.
func Store(dir string, c *Config) error {
	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return fmt.Errorf("store config: %w", err)
	}

	b, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("store config: %w", err)
	}

	return os.WriteFile(filepath.Join(dir, configFile), b, 0600)
}
