package http

import (
	"github.com/luxenails/nail-booking-backend/internal/slots"
)

// AvailabilityResponse is the wire shape for the slots query. The service and
// duration fields only appear when the caller asked about a specific service.
type AvailabilityResponse struct {
	Date         string   `json:"date"`
	Service      string   `json:"service,omitempty"`
	DurationMins int      `json:"durationMins,omitempty"`
	Slots        []string `json:"slots"`
}

func NewAvailabilityResponse(av *slots.Availability) AvailabilityResponse {
	s := av.Slots
	if s == nil {
		s = []string{}
	}
	return AvailabilityResponse{
		Date:         av.Date,
		Service:      av.Service,
		DurationMins: av.DurationMins,
		Slots:        s,
	}
}
