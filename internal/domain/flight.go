package domain

import "time"

// Flight is the inventory row. AvailableSeats is the single source of truth
// for remaining capacity: decremented on reservation, incremented on cancellation.
type Flight struct {
	ID                 int64
	FlightNumber       string
	AirlineID          int64
	DepartureAirportID int64
	ArrivalAirportID   int64
	DepartureTime      time.Time
	Price              float64
	AvailableSeats     int
}

// FlightDetails is the descriptive view joined against airlines and airports,
// used for tickets.
type FlightDetails struct {
	FlightNumber  string
	Airline       string
	DepartureCity string
	ArrivalCity   string
	DepartureTime time.Time
	Price         float64
}

// FlightSummary is one search result row.
type FlightSummary struct {
	ID             int64     `json:"id"`
	FlightNumber   string    `json:"flight_number"`
	Airline        string    `json:"airline"`
	DepartureCity  string    `json:"departure_city"`
	ArrivalCity    string    `json:"arrival_city"`
	DepartureTime  time.Time `json:"departure_time"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"available_seats"`
}

// SearchParams filters flight search. Departure and Arrival match city names
// as substrings; Date, when set, restricts to a calendar day (YYYY-MM-DD).
type SearchParams struct {
	Departure string
	Arrival   string
	Date      string
}
