package settlement

import (
	"context"
	"errors"

	"github.com/mcoot/numbergamble-go/internal/model"
)

// Settlement errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Settlement is the value-transfer primitive the ledger settles
// against. A transfer either fully succeeds and is observably final,
// or fully fails and leaves balances unchanged. In production this is
// the chain's native transfer; Bank is the in-process implementation.
type Settlement interface {
	Transfer(ctx context.Context, from, to model.AccountID, amount uint64) error
	Balance(ctx context.Context, account model.AccountID) (uint64, error)
}
