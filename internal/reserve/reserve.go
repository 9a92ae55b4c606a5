// Package reserve is the boundary to the native currency system. Creating a
// coin locks a deposit of the native currency to discourage spam
// registration; the ledger only needs the ability to reserve, never to
// spend.
package reserve

import (
	"errors"
	"math/big"
	"sync"

	"gitlab.com/multicoinnetwork/multicoin/protocol"
)

// ErrInsufficientFunds is returned when an account cannot cover a
// reservation.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Reserver locks native currency. Implementations must either reserve the
// full amount or leave the account untouched.
type Reserver interface {
	Reserve(account protocol.AccountId, amount *big.Int) error
}

// Book is an in-memory Reserver for tests and standalone use. The host
// environment owns the real currency system.
type Book struct {
	mu       sync.Mutex
	free     map[protocol.AccountId]*big.Int
	reserved map[protocol.AccountId]*big.Int
}

var _ Reserver = (*Book)(nil)

func NewBook() *Book {
	return &Book{
		free:     map[protocol.AccountId]*big.Int{},
		reserved: map[protocol.AccountId]*big.Int{},
	}
}

// Deposit adds free funds to an account.
func (b *Book) Deposit(account protocol.AccountId, amount *big.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur, ok := b.free[account]
	if !ok {
		cur = new(big.Int)
		b.free[account] = cur
	}
	cur.Add(cur, amount)
}

// Reserve moves funds from free to reserved.
func (b *Book) Reserve(account protocol.AccountId, amount *big.Int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	free, ok := b.free[account]
	if !ok || free.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}

	free.Sub(free, amount)
	res, ok := b.reserved[account]
	if !ok {
		res = new(big.Int)
		b.reserved[account] = res
	}
	res.Add(res, amount)
	return nil
}

// Available returns the free balance of an account.
func (b *Book) Available(account protocol.AccountId) *big.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.free[account]; ok {
		return new(big.Int).Set(v)
	}
	return new(big.Int)
}

// Reserved returns the reserved balance of an account.
func (b *Book) Reserved(account protocol.AccountId) *big.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.reserved[account]; ok {
		return new(big.Int).Set(v)
	}
	return new(big.Int)
}
