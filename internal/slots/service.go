// Package slots answers "which appointment times are still open on this
// date". It reads the booking ledger and subtracts booked times from the
// fixed slot catalog; it never writes.
package slots

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/luxenails/nail-booking-backend/internal/booking"
	"github.com/luxenails/nail-booking-backend/internal/catalog"
	"github.com/luxenails/nail-booking-backend/internal/pkg/apperror"
)

var (
	ErrDateRequired = apperror.New(http.StatusBadRequest, "date is required (YYYY-MM-DD)")
	ErrInvalidDate  = apperror.New(http.StatusBadRequest, "date must be a valid YYYY-MM-DD date")
	ErrPastDate     = apperror.New(http.StatusBadRequest, "date is in the past")
)

// Availability is the answer for one date. DurationMins is informational
// only: slots are whole fixed units regardless of how long the service runs.
type Availability struct {
	Date         string
	Service      string
	DurationMins int
	Slots        []string
}

type Service interface {
	AvailableSlots(ctx context.Context, date, service string) (*Availability, error)
}

type service struct {
	repo booking.Repository
}

func NewService(repo booking.Repository) Service {
	return &service{repo: repo}
}

func (s *service) AvailableSlots(ctx context.Context, date, svc string) (*Availability, error) {
	date = strings.TrimSpace(date)
	svc = strings.TrimSpace(svc)

	if date == "" {
		return nil, ErrDateRequired
	}
	if _, err := time.Parse(booking.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	// Date-only comparison against the local calendar day. ISO dates compare
	// lexicographically, so no time-of-day component leaks in.
	if date < time.Now().Format(booking.DateLayout) {
		return nil, ErrPastDate
	}

	booked, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b.Time] = struct{}{}
	}

	// Catalog order is the display order; a fully booked day yields an empty
	// list, which the front end shows as "nothing available".
	free := make([]string, 0, len(catalog.Slots))
	for _, t := range catalog.Slots {
		if _, ok := taken[t]; !ok {
			free = append(free, t)
		}
	}

	av := &Availability{
		Date:  date,
		Slots: free,
	}
	if svc != "" {
		av.Service = svc
		av.DurationMins = catalog.DurationMins(svc)
	}
	return av, nil
}
