package booking

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/luxenails/nail-booking-backend/internal/catalog"
	"github.com/luxenails/nail-booking-backend/internal/pkg/logger"
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// CreateRequest carries the booking form fields. All but Notes are required.
type CreateRequest struct {
	FullName      string
	ClientEmail   string
	ContactDetail string
	Service       string
	Date          string
	Time          string
	Notes         string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
}

type service struct {
	repo     Repository
	notifier Notifier
}

// NewService builds the booking service. notifier may be nil, in which case
// no confirmation is sent.
func NewService(repo Repository, notifier Notifier) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	b := &Booking{
		FullName:      strings.TrimSpace(req.FullName),
		ClientEmail:   strings.TrimSpace(req.ClientEmail),
		ContactDetail: strings.TrimSpace(req.ContactDetail),
		Service:       strings.TrimSpace(req.Service),
		Date:          strings.TrimSpace(req.Date),
		Time:          strings.TrimSpace(req.Time),
		Notes:         strings.TrimSpace(req.Notes),
	}

	// Reject on the first absent required field, in form order.
	required := []struct {
		name  string
		value string
	}{
		{"fullName", b.FullName},
		{"clientEmail", b.ClientEmail},
		{"contactDetail", b.ContactDetail},
		{"service", b.Service},
		{"date", b.Date},
		{"time", b.Time},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, MissingField(f.name)
		}
	}

	if _, err := time.Parse(DateLayout, b.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if !timePattern.MatchString(b.Time) {
		return nil, ErrInvalidTime
	}
	if !catalog.IsSlot(b.Time) {
		return nil, ErrInvalidSlot
	}

	// The repository enforces (date, time) uniqueness atomically; a conflict
	// here means someone else grabbed the slot between the client's slot
	// query and this submit.
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.notifyCreated(b)

	return b, nil
}

func (s *service) List(ctx context.Context) ([]*Booking, error) {
	return s.repo.List(ctx)
}

// notifyCreated sends the confirmation fire-and-forget. The booking is
// already durable at this point; a notification failure is logged and
// otherwise dropped.
func (s *service) notifyCreated(b *Booking) {
	if s.notifier == nil {
		return
	}

	snapshot := *b
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.notifier.BookingConfirmation(ctx, &snapshot); err != nil {
			logger.Error("booking confirmation failed",
				"booking_id", snapshot.ID,
				"date", snapshot.Date,
				"time", snapshot.Time,
				"err", err,
			)
		}
	}()
}
