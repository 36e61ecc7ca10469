// Package notify implements booking.Notifier: confirmation mail for a booking
// that is already on disk. Delivery failures never touch the booking itself.
package notify

import (
	"context"
	"fmt"

	"github.com/luxenails/nail-booking-backend/internal/booking"
	"github.com/luxenails/nail-booking-backend/internal/pkg/logger"
)

// confirmationSubject and the bodies are shared by every mail transport.
const confirmationSubject = "Your appointment is booked"

func confirmationText(b *booking.Booking) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour %s appointment is confirmed for %s at %s.\n\nSee you soon!",
		b.FullName, b.Service, b.Date, b.Time,
	)
}

func confirmationHTML(b *booking.Booking) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>Your <b>%s</b> appointment is confirmed for <b>%s at %s</b>.</p><p>See you soon!</p>",
		b.FullName, b.Service, b.Date, b.Time,
	)
}

// LogNotifier is the dev fallback when no mail transport is configured: it
// writes the confirmation to the log and reports success.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) BookingConfirmation(ctx context.Context, b *booking.Booking) error {
	logger.Info("booking confirmation (mail disabled)",
		"booking_id", b.ID,
		"to", b.ClientEmail,
		"date", b.Date,
		"time", b.Time,
	)
	return nil
}
