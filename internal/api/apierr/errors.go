package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/settlement"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidAccount    = "INVALID_ACCOUNT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeInvalidCapacity   = "INVALID_CAPACITY"
	CodeNotWaiting        = "NOT_WAITING"
	CodeAlreadyJoined     = "ALREADY_JOINED"
	CodeGameFull          = "GAME_FULL"
	CodeNotCreator        = "NOT_CREATOR"
	CodeNotFull           = "NOT_FULL"
	CodeNotStarted        = "NOT_STARTED"
	CodeNotMember         = "NOT_MEMBER"
	CodeAlreadyDecided    = "ALREADY_DECIDED"
	CodeNotReady          = "NOT_READY"
	CodeNotFinished       = "NOT_FINISHED"
	CodeNoContinuers      = "NO_CONTINUERS"
	CodeWrongAmount       = "WRONG_AMOUNT"
	CodeUnexpectedPayment = "UNEXPECTED_PAYMENT"
	CodeAlreadyPaid       = "ALREADY_PAID"
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidAccount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAccount, "Invalid account address"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrPotNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInvalidCapacity):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCapacity, "Capacity must be between 2 and 5"}}
	case errors.Is(err, model.ErrNotWaiting):
		return &httpError{http.StatusConflict, APIError{CodeNotWaiting, "Game is not waiting for players"}}
	case errors.Is(err, model.ErrAlreadyMember):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyJoined, "Already joined this game"}}
	case errors.Is(err, model.ErrGameFull):
		return &httpError{http.StatusConflict, APIError{CodeGameFull, "Game is full"}}
	case errors.Is(err, model.ErrNotCreator):
		return &httpError{http.StatusForbidden, APIError{CodeNotCreator, "Only the creator can perform this action"}}
	case errors.Is(err, model.ErrNotFull):
		return &httpError{http.StatusConflict, APIError{CodeNotFull, "Game does not have enough players to start"}}
	case errors.Is(err, model.ErrNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeNotStarted, "Game has not started"}}
	case errors.Is(err, model.ErrNotMember):
		return &httpError{http.StatusForbidden, APIError{CodeNotMember, "Not a member of this game"}}
	case errors.Is(err, model.ErrAlreadyDecided):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyDecided, "Already decided"}}
	case errors.Is(err, model.ErrNotReady):
		return &httpError{http.StatusConflict, APIError{CodeNotReady, "Game is not ready to resolve"}}
	case errors.Is(err, model.ErrNotFinished):
		return &httpError{http.StatusConflict, APIError{CodeNotFinished, "Game has not finished"}}
	case errors.Is(err, model.ErrNoContinuers):
		return &httpError{http.StatusConflict, APIError{CodeNoContinuers, "No players continued"}}
	case errors.Is(err, model.ErrWrongAmount):
		return &httpError{http.StatusPaymentRequired, APIError{CodeWrongAmount, "Payment does not match the expected fee"}}
	case errors.Is(err, model.ErrUnexpectedPayment):
		return &httpError{http.StatusBadRequest, APIError{CodeUnexpectedPayment, "Folding must not include a payment"}}
	case errors.Is(err, model.ErrAlreadyPaid):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyPaid, "Pot has already been paid out"}}

	// Map settlement errors
	case errors.Is(err, settlement.ErrInsufficientFunds):
		return &httpError{http.StatusPaymentRequired, APIError{CodeInsufficientFunds, "Insufficient funds"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Account identification required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
