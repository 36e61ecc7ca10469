package http

import (
	"time"

	"github.com/luxenails/nail-booking-backend/internal/booking"
)

// CreateAppointmentBody is the booking form payload. Required-field checks
// live in the booking service so the error can name the first missing field;
// binding here stays loose on purpose.
type CreateAppointmentBody struct {
	FullName      string `json:"fullName"`
	ClientEmail   string `json:"clientEmail"`
	ContactDetail string `json:"contactDetail"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Notes         string `json:"notes"`
}

type BookingResponse struct {
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

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		FullName:      b.FullName,
		ClientEmail:   b.ClientEmail,
		ContactDetail: b.ContactDetail,
		Service:       b.Service,
		Date:          b.Date,
		Time:          b.Time,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
}

// CreateAppointmentResponse wraps the created booking, matching the shape the
// booking form expects.
type CreateAppointmentResponse struct {
	OK      bool            `json:"ok"`
	Booking BookingResponse `json:"booking"`
}

// ListAppointmentsResponse is the admin/debug dump of the ledger.
type ListAppointmentsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}
