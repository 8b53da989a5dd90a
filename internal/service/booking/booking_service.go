package booking

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Reserve(ctx context.Context, input ReserveInput) (*domain.Ticket, error)
	Cancel(ctx context.Context, bookingID int64) (*domain.CancelResult, error)
	History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService coordinates reserve and release transactions against the
// inventory store. It holds no in-process booking state: all serialization of
// conflicting requests is delegated to the store's row locks, so multiple
// service instances may share one database.
type BookingService struct {
	store              repository.InventoryStore
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type ReserveInput struct {
	FlightID     int64  `json:"flight_id"`
	UserID       int64  `json:"user_id"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Seats        int    `json:"seats"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(store repository.InventoryStore, producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		store:        store,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Reserve books seats on a flight. The availability check, booking insert and
// seat decrement run in one transaction under an exclusive lock on the flight
// row; two concurrent reservations for the same flight serialize on that lock,
// so the second one sees the already-decremented count. The ticket is
// assembled from a separate read after commit — a failure there is reported
// with its own kind and leaves the committed reservation in place.
func (s *BookingService) Reserve(ctx context.Context, input ReserveInput) (*domain.Ticket, error) {
	if input.FlightID <= 0 {
		return nil, domain.InvalidInput("flight id is required")
	}
	if input.UserID <= 0 {
		return nil, domain.InvalidInput("user id is required")
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, domain.InvalidInput("customer name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, domain.InvalidInput("email is required")
	}
	if input.Seats <= 0 {
		return nil, domain.InvalidInput("seat count must be positive")
	}

	booking := &domain.Booking{
		FlightID:     input.FlightID,
		UserID:       input.UserID,
		CustomerName: input.CustomerName,
		Email:        input.Email,
		SeatsBooked:  input.Seats,
	}

	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		flight, err := tx.LockFlight(ctx, input.FlightID)
		if err != nil {
			return err
		}
		if flight.AvailableSeats < input.Seats {
			return domain.InsufficientInventory(flight.AvailableSeats)
		}
		if err := tx.InsertBooking(ctx, booking); err != nil {
			return err
		}
		return tx.AddSeats(ctx, input.FlightID, -input.Seats)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)

	details, err := s.store.FlightDetails(ctx, input.FlightID)
	if err != nil {
		return nil, domain.TicketAssembly(booking.ID, err)
	}
	return assembleTicket(booking, details), nil
}

// Cancel deletes a booking and returns its seats to the flight's inventory in
// one transaction. The exclusive lock on the booking row keeps a concurrent
// cancellation of the same id from also succeeding: the loser finds the row
// gone and gets NotFound. A booking that never existed reports the same way —
// deletion-based cancellation cannot tell the two apart.
func (s *BookingService) Cancel(ctx context.Context, bookingID int64) (*domain.CancelResult, error) {
	if bookingID <= 0 {
		return nil, domain.InvalidInput("booking id is required")
	}

	var cancelled *domain.Booking
	err := s.withTx(ctx, func(tx repository.InventoryTx) error {
		booking, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := tx.AddSeats(ctx, booking.FlightID, booking.SeatsBooked); err != nil {
			return err
		}
		if err := tx.DeleteBooking(ctx, bookingID); err != nil {
			return err
		}
		cancelled = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_cancelled", cancelled)

	return &domain.CancelResult{
		SeatsReturned: cancelled.SeatsBooked,
		FlightID:      cancelled.FlightID,
	}, nil
}

func (s *BookingService) History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	if userID <= 0 {
		return nil, domain.InvalidInput("user id is required")
	}
	return s.store.UserHistory(ctx, userID)
}

// withTx runs fn inside one inventory transaction. Any failure rolls back and
// no partial effect survives; untyped infrastructure errors come back wrapped
// as TransactionFailed, typed domain errors pass through unchanged.
func (s *BookingService) withTx(ctx context.Context, fn func(tx repository.InventoryTx) error) error {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return domain.TransactionFailed(err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			return err
		}
		return domain.TransactionFailed(err)
	}
	if err := tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return domain.TransactionFailed(err)
	}
	return nil
}

// publish emits a booking event after commit. Delivery is best effort: the
// reservation or cancellation already committed, so a broker failure is
// logged and the operation still reports success.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		BookingID:    booking.ID,
		FlightID:     booking.FlightID,
		UserID:       booking.UserID,
		CustomerName: booking.CustomerName,
		Email:        booking.Email,
		Seats:        booking.SeatsBooked,
		CreatedAt:    time.Now(),
	}
	key := strconv.FormatInt(booking.FlightID, 10)
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %d: %v", eventType, booking.ID, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %d: %v", eventType, booking.ID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
