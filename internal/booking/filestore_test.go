package booking

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
}

func testBooking(date, timeOfDay string) *Booking {
	return &Booking{
		FullName:      "A",
		ClientEmail:   "a@x.com",
		ContactDetail: "555",
		Service:       "gel",
		Date:          date,
		Time:          timeOfDay,
	}
}

func TestFileStoreMissingFileIsEmptyLedger(t *testing.T) {
	store := newTestStore(t)

	got, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreCreateAssignsIDAndPersists(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	b := testBooking("2025-06-01", "11:00")
	b.Notes = "please use the red polish"
	require.NoError(t, store.Create(ctx, b))

	assert.NotZero(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())

	// All fields survive a read back.
	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b, got[0])

	// The file on disk is a plain JSON array.
	raw, err := os.ReadFile(store.path)
	require.NoError(t, err)
	var onDisk []map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Len(t, onDisk, 1)
	assert.Equal(t, "2025-06-01", onDisk[0]["date"])
	assert.Equal(t, "11:00", onDisk[0]["time"])
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	ctx := context.Background()

	store := NewFileStore(path)
	require.NoError(t, store.Create(ctx, testBooking("2025-06-01", "11:00")))

	reopened := NewFileStore(path)
	got, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "11:00", got[0].Time)
}

func TestFileStoreRejectsDoubleBooking(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testBooking("2025-06-01", "10:00")))

	err := store.Create(ctx, testBooking("2025-06-01", "10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Ledger length unchanged after the rejected create.
	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Same time on another day is fine.
	require.NoError(t, store.Create(ctx, testBooking("2025-06-02", "10:00")))
}

func TestFileStoreIDsAreMonotonic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var last int64
	for _, slot := range []string{"10:00", "10:30", "11:00", "11:30"} {
		b := testBooking("2025-06-01", slot)
		require.NoError(t, store.Create(ctx, b))
		assert.Greater(t, b.ID, last)
		last = b.ID
	}
}

func TestFileStoreConcurrentCreatesSameSlot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Create(ctx, testBooking("2025-06-01", "14:00"))
		}()
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, ErrSlotTaken)
			conflicts++
		}
	}

	assert.Equal(t, 1, successes, "exactly one create may win the slot")
	assert.Equal(t, attempts-1, conflicts)

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFileStoreFailedFlushIsNotCommitted(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "missing", "bookings.json"))
	ctx := context.Background()

	// Parent directory does not exist, so the flush must fail.
	err := store.Create(ctx, testBooking("2025-06-01", "10:00"))
	require.Error(t, err)

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "a booking that never hit disk must not linger in memory")
}

func TestFileStoreListByDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testBooking("2025-06-01", "10:00")))
	require.NoError(t, store.Create(ctx, testBooking("2025-06-01", "12:30")))
	require.NoError(t, store.Create(ctx, testBooking("2025-06-02", "10:00")))

	got, err := store.ListByDate(ctx, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.Equal(t, "2025-06-01", b.Date)
	}

	none, err := store.ListByDate(ctx, "2025-07-01")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFileStoreListReturnsCopies(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testBooking("2025-06-01", "10:00")))

	first, err := store.List(ctx)
	require.NoError(t, err)
	first[0].FullName = "mutated"

	second, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", second[0].FullName)
}
