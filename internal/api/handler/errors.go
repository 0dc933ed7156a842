package handler

import (
	"net/http"

	"github.com/mcoot/numbergamble-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest    = apierr.CodeInvalidRequest
	CodeInvalidAccount    = apierr.CodeInvalidAccount
	CodeUnauthorized      = apierr.CodeUnauthorized
	CodeGameNotFound      = apierr.CodeGameNotFound
	CodeInvalidCapacity   = apierr.CodeInvalidCapacity
	CodeNotWaiting        = apierr.CodeNotWaiting
	CodeAlreadyJoined     = apierr.CodeAlreadyJoined
	CodeGameFull          = apierr.CodeGameFull
	CodeNotCreator        = apierr.CodeNotCreator
	CodeNotFull           = apierr.CodeNotFull
	CodeNotStarted        = apierr.CodeNotStarted
	CodeNotMember         = apierr.CodeNotMember
	CodeAlreadyDecided    = apierr.CodeAlreadyDecided
	CodeNotReady          = apierr.CodeNotReady
	CodeNotFinished       = apierr.CodeNotFinished
	CodeNoContinuers      = apierr.CodeNoContinuers
	CodeWrongAmount       = apierr.CodeWrongAmount
	CodeUnexpectedPayment = apierr.CodeUnexpectedPayment
	CodeAlreadyPaid       = apierr.CodeAlreadyPaid
	CodeInsufficientFunds = apierr.CodeInsufficientFunds
	CodeInternalError     = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
