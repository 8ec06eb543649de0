package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrItemNotFound is returned when an item is not found.
	ErrItemNotFound = errors.New("item not found")
	// ErrGoalExpenseNotFound is returned when a goal expense is not found.
	ErrGoalExpenseNotFound = errors.New("goal expense not found")
	// ErrInsufficientBudget is returned when a user cannot afford a transaction.
	ErrInsufficientBudget = errors.New("insufficient budget. You can't add this transaction with the current budget you have!")
	// ErrInvalidAmount is returned when a monetary amount is invalid.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUserDoesNotExist is returned on sign-in with an unknown email.
	ErrUserDoesNotExist = errors.New("the user doesn't exist. You should signup!")
	// ErrIncorrectPassword is returned on sign-in with a wrong password.
	ErrIncorrectPassword = errors.New("incorrect password. Please try again!")
)

// ErrorResponse is the JSON error envelope returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrGoalExpenseNotFound),
		errors.Is(err, ErrUserDoesNotExist):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInsufficientBudget), errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrIncorrectPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
