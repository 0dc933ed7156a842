package settlement

import (
	"context"
	"fmt"
	"sync"

	"github.com/mcoot/numbergamble-go/internal/model"
)

// Bank is an in-memory Settlement implementation. Balances live in a
// map under a single mutex, so a transfer debits and credits within
// one critical section and can never be observed half-applied.
type Bank struct {
	mu       sync.RWMutex
	balances map[model.AccountID]uint64
}

// NewBank creates an empty Bank
func NewBank() *Bank {
	return &Bank{
		balances: make(map[model.AccountID]uint64),
	}
}

// Ensure Bank implements the interface
var _ Settlement = (*Bank)(nil)

// Deposit credits an account out of thin air. This is how tests and
// local deployments fund players; the on-chain substrate has no
// equivalent.
func (b *Bank) Deposit(account model.AccountID, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[account] += amount
}

// Transfer moves amount from one account to another atomically
func (b *Bank) Transfer(ctx context.Context, from, to model.AccountID, amount uint64) error {
	if amount == 0 {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.balances[from] < amount {
		return fmt.Errorf("%w: account %s has %d, needs %d", ErrInsufficientFunds, from, b.balances[from], amount)
	}

	b.balances[from] -= amount
	b.balances[to] += amount
	return nil
}

// Balance returns an account's current balance
func (b *Bank) Balance(ctx context.Context, account model.AccountID) (uint64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[account], nil
}
