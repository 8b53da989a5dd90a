package booking

import (
	"math"
	"strconv"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

func assembleTicket(booking *domain.Booking, details *domain.FlightDetails) *domain.Ticket {
	return &domain.Ticket{
		BookingID:     booking.ID,
		CustomerName:  booking.CustomerName,
		Email:         booking.Email,
		SeatsBooked:   booking.SeatsBooked,
		FlightNumber:  details.FlightNumber,
		Airline:       details.Airline,
		DepartureCity: details.DepartureCity,
		ArrivalCity:   details.ArrivalCity,
		DepartureTime: details.DepartureTime,
		PricePaid:     ticketPrice(details.Price, booking.SeatsBooked),
		FlightID:      booking.FlightID,
	}
}

// ticketPrice formats seats × unit price rounded half-up to two decimals,
// so 3 seats at 149.995 come out as "449.99".
func ticketPrice(unitPrice float64, seats int) string {
	cents := math.Floor(unitPrice*float64(seats)*100 + 0.5)
	return strconv.FormatFloat(cents/100, 'f', 2, 64)
}
