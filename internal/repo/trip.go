// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// Only SQL and type mapping live here.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
// Begin on a pgx.Tx opens a savepoint, so multi-statement writes stay atomic
// in both cases.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
type TripRepo interface {
	// Create inserts a trip and one unconfirmed participant per e-mail in a
	// single transaction, and returns the persisted trip.
	Create(ctx context.Context, trip domain.Trip, emails []string) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListPaged returns one page of trips ordered by starts_at descending,
	// and the total number of trips.
	ListPaged(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Trip], error)

	// Update overwrites destination and dates and returns the updated record.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip and, by cascade, everything attached to it.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, destination, starts_at, ends_at, is_confirmed, created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip, emails []string) (domain.Trip, error) {
	const insertTrip = `
		INSERT INTO trips (destination, starts_at, ends_at)
		VALUES (@destination, @starts_at, @ends_at)
		RETURNING ` + tripColumns

	const insertParticipant = `
		INSERT INTO participants (trip_id, email)
		VALUES (@trip_id, @email)
		ON CONFLICT (trip_id, email) DO NOTHING`

	var created domain.Trip
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, insertTrip, pgx.NamedArgs{
			"destination": trip.Destination,
			"starts_at":   trip.StartsAt,
			"ends_at":     trip.EndsAt,
		})
		var err error
		if created, err = scanTrip(row); err != nil {
			return err
		}

		if len(emails) == 0 {
			return nil
		}
		batch := &pgx.Batch{}
		for _, email := range emails {
			batch.Queue(insertParticipant, pgx.NamedArgs{"trip_id": created.ID, "email": email})
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return created, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Trip], error) {
	const countQ = `SELECT count(*) FROM trips`
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY starts_at DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	var page domain.Page[domain.Trip]
	if err := r.db.QueryRow(ctx, countQ).Scan(&page.Total); err != nil {
		return page, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return page, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return page, fmt.Errorf("repo.TripRepo.ListPaged: scan: %w", err)
		}
		page.Items = append(page.Items, t)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("repo.TripRepo.ListPaged: rows: %w", err)
	}
	return page, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination = @destination,
		    starts_at   = @starts_at,
		    ends_at     = @ends_at,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"id":          trip.ID,
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t        domain.Trip
		id       pgtype.UUID
		startsAt pgtype.Date
		endsAt   pgtype.Date
	)

	err := s.Scan(&id, &t.Destination, &startsAt, &endsAt, &t.IsConfirmed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Trip{}, mapError(err)
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartsAt = startsAt.Time
	t.EndsAt = endsAt.Time
	return t, nil
}

// foreignKeyViolation is the Postgres SQLSTATE for a missing referenced row.
const foreignKeyViolation = "23503"

// mapError translates driver errors into domain sentinels: no rows and
// dangling trip references both become domain.ErrNotFound.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
	}
	return err
}
