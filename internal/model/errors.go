package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrInvalidAccount = errors.New("invalid account address")

	// Registry errors
	ErrGameNotFound    = errors.New("game not found")
	ErrInvalidCapacity = errors.New("capacity must be between 2 and 5")

	// Session errors
	ErrNotWaiting        = errors.New("game is not waiting for players")
	ErrAlreadyMember     = errors.New("player already joined this game")
	ErrGameFull          = errors.New("game is full")
	ErrNotCreator        = errors.New("only the creator can perform this action")
	ErrNotFull           = errors.New("game does not have enough players to start")
	ErrNotStarted        = errors.New("game has not started")
	ErrNotMember         = errors.New("player is not in this game")
	ErrAlreadyDecided    = errors.New("player has already decided")
	ErrNotReady          = errors.New("game is not ready to resolve")
	ErrNotFinished       = errors.New("game has not finished")
	ErrNoContinuers      = errors.New("no players continued")

	// Ledger errors
	ErrWrongAmount       = errors.New("payment does not match the expected fee")
	ErrUnexpectedPayment = errors.New("folding must not include a payment")
	ErrAlreadyPaid       = errors.New("pot has already been paid out")
	ErrPotNotFound       = errors.New("pot record not found")
)
