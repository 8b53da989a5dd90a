package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so the transport layer can pick a status
// without parsing messages.
type ErrorKind string

const (
	KindInvalidInput          ErrorKind = "INVALID_INPUT"
	KindNotFound              ErrorKind = "NOT_FOUND"
	KindInsufficientInventory ErrorKind = "INSUFFICIENT_INVENTORY"
	KindTransactionFailed     ErrorKind = "TRANSACTION_FAILED"

	// KindTicketAssembly marks a post-commit formatting failure. The
	// reservation it follows is already committed and stands.
	KindTicketAssembly ErrorKind = "TICKET_ASSEMBLY"
)

// Error is the typed failure the booking engine surfaces to callers.
type Error struct {
	Kind    ErrorKind
	Message string

	// Remaining holds the actual seat count left, set for
	// KindInsufficientInventory.
	Remaining int

	// BookingID identifies the committed booking, set for
	// KindTicketAssembly.
	BookingID int64

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func InvalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func InsufficientInventory(remaining int) error {
	return &Error{
		Kind:      KindInsufficientInventory,
		Message:   fmt.Sprintf("only %d seats remaining", remaining),
		Remaining: remaining,
	}
}

func TransactionFailed(err error) error {
	return &Error{Kind: KindTransactionFailed, Message: "booking transaction failed", Err: err}
}

func TicketAssembly(bookingID int64, err error) error {
	return &Error{
		Kind:      KindTicketAssembly,
		Message:   fmt.Sprintf("booking %d is confirmed but the ticket could not be assembled", bookingID),
		BookingID: bookingID,
		Err:       err,
	}
}

// KindOf extracts the kind from any error in the chain. Untyped errors count
// as transaction failures.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindTransactionFailed
}
