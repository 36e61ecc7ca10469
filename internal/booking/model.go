package booking

import (
	"context"
	"net/http"
	"time"

	"github.com/luxenails/nail-booking-backend/internal/pkg/apperror"
)

var (
	ErrSlotTaken   = apperror.New(http.StatusConflict, "slot already booked")
	ErrInvalidSlot = apperror.New(http.StatusBadRequest, "time is not a valid slot")
	ErrInvalidTime = apperror.New(http.StatusBadRequest, "time must be in HH:MM (e.g. 15:00)")
	ErrInvalidDate = apperror.New(http.StatusBadRequest, "date must be a valid YYYY-MM-DD date")
)

// MissingField builds the rejection for an absent required field.
// The message names the field so the form can point at the right input.
func MissingField(name string) *apperror.AppError {
	return apperror.New(http.StatusBadRequest, name+" is required")
}

// DateLayout is the calendar-date format used on the wire and in the ledger.
const DateLayout = "2006-01-02"

// Booking is one reserved appointment. The JSON tags double as the persisted
// ledger format, so the bookings file stays readable next to records written
// by the previous deployment.
type Booking struct {
	ID            int64     `json:"id"`
	FullName      string    `json:"fullName"`
	ClientEmail   string    `json:"clientEmail"`
	ContactDetail string    `json:"contactDetail"`
	Service       string    `json:"service"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Notifier is the outbound port for booking confirmations. It runs only after
// the ledger write is durable, and its failures never affect whether the
// booking counts as committed.
type Notifier interface {
	BookingConfirmation(ctx context.Context, b *Booking) error
}
