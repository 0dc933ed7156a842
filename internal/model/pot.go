package model

import "time"

// ContributionKind identifies which fee a payment covered
type ContributionKind string

const (
	ContributionJoin     ContributionKind = "join"
	ContributionContinue ContributionKind = "continue"
)

// Contribution records one validated fee payment into a pot
type Contribution struct {
	Payer  AccountID
	Amount uint64
	Kind   ContributionKind
	At     time.Time
}

// PotRecord is the ledger's view of one game's pot. Records are
// append-only: payout zeroes Amount but Collected and Contributions
// keep the full history.
type PotRecord struct {
	GameID GameID

	// Amount is the current pot value; zero after payout
	Amount uint64

	// Collected is the lifetime fee total, unaffected by payout
	Collected uint64

	Contributions []Contribution

	// Paid guards the at-most-once payout; the underlying transfer is
	// irreversible so this is a hard invariant
	Paid   bool
	PaidTo AccountID
	PaidAt time.Time

	UpdatedAt time.Time
}
