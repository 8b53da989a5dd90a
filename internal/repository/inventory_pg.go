package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryStore is the transactional resource the booking engine runs
// against. Begin pins a single pooled connection to the returned transaction
// for its whole duration; the row locks taken inside are connection-scoped.
type InventoryStore interface {
	Begin(ctx context.Context) (InventoryTx, error)
	SearchFlights(ctx context.Context, params domain.SearchParams) ([]domain.FlightSummary, error)
	FlightDetails(ctx context.Context, flightID int64) (*domain.FlightDetails, error)
	UserHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error)
}

// InventoryTx is one unit of work. LockFlight and LockBooking take exclusive
// row locks that block conflicting transactions until Commit or Rollback.
type InventoryTx interface {
	LockFlight(ctx context.Context, flightID int64) (*domain.Flight, error)
	InsertBooking(ctx context.Context, booking *domain.Booking) error
	AddSeats(ctx context.Context, flightID int64, delta int) error
	LockBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PGInventoryStore struct {
	db *pgxpool.Pool
}

func NewInventoryStore(db *pgxpool.Pool) InventoryStore {
	return &PGInventoryStore{db: db}
}

func (s *PGInventoryStore) Begin(ctx context.Context) (InventoryTx, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin inventory tx: %w", err)
	}
	return &pgInventoryTx{tx: tx}, nil
}

func (s *PGInventoryStore) SearchFlights(ctx context.Context, params domain.SearchParams) ([]domain.FlightSummary, error) {
	sql := `SELECT f.id, f.flight_number, al.name, a_dep.city, a_arr.city, f.departure_time, f.price, f.available_seats
		FROM flights f
		JOIN airlines al ON f.airline_id = al.airline_id
		JOIN airports a_dep ON f.departure_airport_id = a_dep.airport_id
		JOIN airports a_arr ON f.arrival_airport_id = a_arr.airport_id
		WHERE a_dep.city ILIKE $1 AND a_arr.city ILIKE $2`
	args := []any{"%" + params.Departure + "%", "%" + params.Arrival + "%"}

	if params.Date != "" {
		sql += ` AND f.departure_time::date = $3::date`
		args = append(args, params.Date)
	}
	sql += ` AND f.available_seats > 0 ORDER BY f.price ASC`

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.FlightSummary, 0)
	for rows.Next() {
		var f domain.FlightSummary
		if err := rows.Scan(&f.ID, &f.FlightNumber, &f.Airline, &f.DepartureCity, &f.ArrivalCity, &f.DepartureTime, &f.Price, &f.AvailableSeats); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (s *PGInventoryStore) FlightDetails(ctx context.Context, flightID int64) (*domain.FlightDetails, error) {
	row := s.db.QueryRow(ctx, `SELECT f.flight_number, al.name, a_dep.city, a_arr.city, f.departure_time, f.price
		FROM flights f
		JOIN airlines al ON f.airline_id = al.airline_id
		JOIN airports a_dep ON f.departure_airport_id = a_dep.airport_id
		JOIN airports a_arr ON f.arrival_airport_id = a_arr.airport_id
		WHERE f.id=$1`, flightID)
	var d domain.FlightDetails
	if err := row.Scan(&d.FlightNumber, &d.Airline, &d.DepartureCity, &d.ArrivalCity, &d.DepartureTime, &d.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("flight not found")
		}
		return nil, err
	}
	return &d, nil
}

func (s *PGInventoryStore) UserHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	rows, err := s.db.Query(ctx, `SELECT b.id, b.booking_date, b.seats_booked, f.flight_number, f.departure_time, al.name, a_dep.city, a_arr.city
		FROM bookings b
		JOIN flights f ON b.flight_id = f.id
		JOIN airlines al ON f.airline_id = al.airline_id
		JOIN airports a_dep ON f.departure_airport_id = a_dep.airport_id
		JOIN airports a_arr ON f.arrival_airport_id = a_arr.airport_id
		WHERE b.user_id=$1
		ORDER BY b.booking_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.BookingID, &e.BookingDate, &e.SeatsBooked, &e.FlightNumber, &e.DepartureTime, &e.Airline, &e.DepartureCity, &e.ArrivalCity); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type pgInventoryTx struct {
	tx pgx.Tx
}

func (t *pgInventoryTx) LockFlight(ctx context.Context, flightID int64) (*domain.Flight, error) {
	row := t.tx.QueryRow(ctx, `SELECT id, flight_number, airline_id, departure_airport_id, arrival_airport_id, departure_time, price, available_seats
		FROM flights WHERE id=$1 FOR UPDATE`, flightID)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.AirlineID, &f.DepartureAirportID, &f.ArrivalAirportID, &f.DepartureTime, &f.Price, &f.AvailableSeats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("flight not found")
		}
		return nil, err
	}
	return &f, nil
}

func (t *pgInventoryTx) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	return t.tx.QueryRow(ctx, `INSERT INTO bookings (flight_id, user_id, customer_name, email, seats_booked)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, booking_date`, booking.FlightID, booking.UserID, booking.CustomerName, booking.Email, booking.SeatsBooked).
		Scan(&booking.ID, &booking.CreatedAt)
}

func (t *pgInventoryTx) AddSeats(ctx context.Context, flightID int64, delta int) error {
	cmd, err := t.tx.Exec(ctx, `UPDATE flights SET available_seats = available_seats + $2 WHERE id=$1`, flightID, delta)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("flight not found")
	}
	return nil
}

func (t *pgInventoryTx) LockBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	row := t.tx.QueryRow(ctx, `SELECT id, flight_id, user_id, customer_name, email, seats_booked, booking_date
		FROM bookings WHERE id=$1 FOR UPDATE`, bookingID)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.FlightID, &b.UserID, &b.CustomerName, &b.Email, &b.SeatsBooked, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("booking not found or already cancelled")
		}
		return nil, err
	}
	return &b, nil
}

func (t *pgInventoryTx) DeleteBooking(ctx context.Context, bookingID int64) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, bookingID)
	return err
}

func (t *pgInventoryTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *pgInventoryTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

var _ InventoryStore = (*PGInventoryStore)(nil)
var _ InventoryTx = (*pgInventoryTx)(nil)
