package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightbooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "booking_created":
		fmt.Printf("send email to %s: booking %d confirmed, %d seats on flight %d\n",
			event.Email, event.BookingID, event.Seats, event.FlightID)
	case "booking_cancelled":
		fmt.Printf("send email to %s: booking %d cancelled, %d seats returned to flight %d\n",
			event.Email, event.BookingID, event.Seats, event.FlightID)
	}
	return nil
}
