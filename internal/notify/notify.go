package notify

import (
	"context"
	"log"
	"strings"

	"github.com/maelc/cinebooking/internal/kafka"
)

// Sender acknowledges booking events to the user. Stands in for a real
// mail/push integration behind the worker.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case kafka.EventBookingAdded:
		log.Printf("notify %s: booked %s on %s", event.UserID, strings.Join(event.Movies, ", "), event.Date)
	case kafka.EventBookingDeleted:
		log.Printf("notify %s: cancelled %s on %s", event.UserID, event.Movie, event.Date)
	default:
		log.Printf("notify %s: %s on %s", event.UserID, event.Type, event.Date)
	}
	return nil
}
