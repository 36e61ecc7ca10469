package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the booking ledger. Create must enforce the (date, time)
// uniqueness invariant atomically: the conflict check and the append are one
// operation from the caller's point of view, so two concurrent creates for
// the same slot yield exactly one success and one ErrSlotTaken.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	List(ctx context.Context) ([]*Booking, error)
	ListByDate(ctx context.Context, date string) ([]*Booking, error)
}

// pgxRepository stores bookings in Postgres. The schema carries a unique
// index on (booking_date, booking_time), so double-booking is rejected by
// the database itself rather than by a separate pre-check:
//
//	CREATE TABLE public.bookings (
//	    id             BIGSERIAL PRIMARY KEY,
//	    full_name      TEXT NOT NULL,
//	    client_email   TEXT NOT NULL,
//	    contact_detail TEXT NOT NULL,
//	    service        TEXT NOT NULL,
//	    booking_date   TEXT NOT NULL,
//	    booking_time   TEXT NOT NULL,
//	    notes          TEXT NOT NULL DEFAULT '',
//	    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    UNIQUE (booking_date, booking_time)
//	);
type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("full_name", "client_email", "contact_detail", "service", "booking_date", "booking_time", "notes").
		Values(b.FullName, b.ClientEmail, b.ContactDetail, b.Service, b.Date, b.Time, b.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "full_name", "client_email", "contact_detail", "service",
		"booking_date", "booking_time", "notes", "created_at",
	).
		From("public.bookings").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) ListByDate(ctx context.Context, date string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "full_name", "client_email", "contact_detail", "service",
		"booking_date", "booking_time", "notes", "created_at",
	).
		From("public.bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("booking_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings by date query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) queryBookings(ctx context.Context, query string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.FullName, &b.ClientEmail, &b.ContactDetail, &b.Service,
			&b.Date, &b.Time, &b.Notes, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}

	return bookings, nil
}
