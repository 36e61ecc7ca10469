package slots

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxenails/nail-booking-backend/internal/booking"
	"github.com/luxenails/nail-booking-backend/internal/catalog"
)

func newTestLedger(t *testing.T) *booking.FileStore {
	t.Helper()
	return booking.NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(booking.DateLayout)
}

func book(t *testing.T, store *booking.FileStore, date, timeOfDay string) {
	t.Helper()
	err := store.Create(context.Background(), &booking.Booking{
		FullName:      "A",
		ClientEmail:   "a@x.com",
		ContactDetail: "555",
		Service:       "gel",
		Date:          date,
		Time:          timeOfDay,
	})
	require.NoError(t, err)
}

func TestAvailableSlotsValidation(t *testing.T) {
	svc := NewService(newTestLedger(t))
	ctx := context.Background()

	_, err := svc.AvailableSlots(ctx, "", "")
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = svc.AvailableSlots(ctx, "   ", "")
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = svc.AvailableSlots(ctx, "2025-13-40", "")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.AvailableSlots(ctx, "not-a-date", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAvailableSlotsRejectsPastDate(t *testing.T) {
	svc := NewService(newTestLedger(t))

	_, err := svc.AvailableSlots(context.Background(), "2000-01-01", "")
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestAvailableSlotsTodayIsNotPast(t *testing.T) {
	svc := NewService(newTestLedger(t))

	today := time.Now().Format(booking.DateLayout)
	av, err := svc.AvailableSlots(context.Background(), today, "")
	require.NoError(t, err)
	assert.Equal(t, catalog.Slots, av.Slots)
}

func TestAvailableSlotsEmptyDateReturnsFullCatalog(t *testing.T) {
	svc := NewService(newTestLedger(t))

	av, err := svc.AvailableSlots(context.Background(), futureDate(7), "")
	require.NoError(t, err)
	assert.Equal(t, catalog.Slots, av.Slots)
	assert.Empty(t, av.Service)
	assert.Zero(t, av.DurationMins)
}

func TestAvailableSlotsExcludesBookedTimes(t *testing.T) {
	ledger := newTestLedger(t)
	svc := NewService(ledger)
	date := futureDate(7)

	book(t, ledger, date, "10:30")
	book(t, ledger, date, "14:00")

	av, err := svc.AvailableSlots(context.Background(), date, "")
	require.NoError(t, err)

	assert.Len(t, av.Slots, len(catalog.Slots)-2)
	assert.NotContains(t, av.Slots, "10:30")
	assert.NotContains(t, av.Slots, "14:00")

	// Catalog order is preserved.
	last := ""
	for _, s := range av.Slots {
		assert.Greater(t, s, last)
		last = s
	}
}

func TestAvailableSlotsIgnoresOtherDates(t *testing.T) {
	ledger := newTestLedger(t)
	svc := NewService(ledger)

	book(t, ledger, futureDate(8), "10:30")

	av, err := svc.AvailableSlots(context.Background(), futureDate(7), "")
	require.NoError(t, err)
	assert.Equal(t, catalog.Slots, av.Slots)
}

func TestAvailableSlotsFullyBookedDayIsEmptyNotError(t *testing.T) {
	ledger := newTestLedger(t)
	svc := NewService(ledger)
	date := futureDate(7)

	for _, s := range catalog.Slots {
		book(t, ledger, date, s)
	}

	av, err := svc.AvailableSlots(context.Background(), date, "")
	require.NoError(t, err)
	assert.Empty(t, av.Slots)
}

func TestAvailableSlotsWithService(t *testing.T) {
	svc := NewService(newTestLedger(t))
	ctx := context.Background()

	av, err := svc.AvailableSlots(ctx, futureDate(7), "gel")
	require.NoError(t, err)
	assert.Equal(t, "gel", av.Service)
	assert.Equal(t, 60, av.DurationMins)
	// Duration is informational; it never filters slots.
	assert.Equal(t, catalog.Slots, av.Slots)

	// Unknown services fall back to the default duration, no rejection.
	av, err = svc.AvailableSlots(ctx, futureDate(7), "crystal-healing")
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultDurationMins, av.DurationMins)
}
