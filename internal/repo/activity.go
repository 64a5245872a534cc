package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
type ActivityRepo interface {
	// Create inserts an activity. Returns domain.ErrNotFound if
	// activity.TripID does not reference a trip.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// ListByTripID returns the activities of a trip ordered by occurs_at.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, trip_id, title, occurs_at, created_at`

func (r *pgActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (trip_id, title, occurs_at)
		VALUES (@trip_id, @title, @occurs_at)
		RETURNING ` + activityColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"trip_id":   activity.TripID,
		"title":     activity.Title,
		"occurs_at": activity.OccursAt,
	})
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE trip_id = @trip_id
		ORDER BY occurs_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: rows: %w", err)
	}
	return activities, nil
}

func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a          domain.Activity
		id, tripID pgtype.UUID
	)
	if err := s.Scan(&id, &tripID, &a.Title, &a.OccursAt, &a.CreatedAt); err != nil {
		return domain.Activity{}, mapError(err)
	}
	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	a.OccursAt = a.OccursAt.UTC()
	return a, nil
}
