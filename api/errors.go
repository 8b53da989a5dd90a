package api

import (
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

// statusFor maps the engine's error kinds onto HTTP statuses. Ticket assembly
// failures happen after the reservation committed, so they report server-side
// but the message names the booking that stands.
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInsufficientInventory:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
