package domain

import "time"

// Booking ties reserved seats to a flight and a user. A booking has no
// cancelled state: cancellation deletes the row and returns its seats to the
// flight's inventory in the same transaction.
type Booking struct {
	ID           int64
	FlightID     int64
	UserID       int64
	CustomerName string
	Email        string
	SeatsBooked  int
	CreatedAt    time.Time
}

// Ticket is the confirmation payload assembled after a committed reservation.
type Ticket struct {
	BookingID     int64     `json:"booking_id"`
	CustomerName  string    `json:"customer_name"`
	Email         string    `json:"email"`
	SeatsBooked   int       `json:"seats_booked"`
	FlightNumber  string    `json:"flight_number"`
	Airline       string    `json:"airline"`
	DepartureCity string    `json:"departure_city"`
	ArrivalCity   string    `json:"arrival_city"`
	DepartureTime time.Time `json:"departure_time"`
	PricePaid     string    `json:"price_paid"`
	FlightID      int64     `json:"flight_id"`
}

// CancelResult reports what a committed cancellation gave back.
type CancelResult struct {
	SeatsReturned int   `json:"seats_returned"`
	FlightID      int64 `json:"flight_id"`
}

// HistoryEntry is one row of a user's booking history.
type HistoryEntry struct {
	BookingID     int64     `json:"booking_id"`
	BookingDate   time.Time `json:"booking_date"`
	SeatsBooked   int       `json:"seats_booked"`
	FlightNumber  string    `json:"flight_number"`
	DepartureTime time.Time `json:"departure_time"`
	Airline       string    `json:"airline"`
	DepartureCity string    `json:"departure_city"`
	ArrivalCity   string    `json:"arrival_city"`
}
