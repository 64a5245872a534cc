package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// LinkRepo defines the persistence operations for Links.
type LinkRepo interface {
	// Create inserts a link. Returns domain.ErrNotFound if link.TripID does
	// not reference a trip.
	Create(ctx context.Context, link domain.Link) (domain.Link, error)

	// ListByTripID returns the links of a trip in creation order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error)
}

type pgLinkRepo struct {
	db db
}

// NewLinkRepo constructs a LinkRepo backed by the provided db connection.
func NewLinkRepo(db db) LinkRepo {
	return &pgLinkRepo{db: db}
}

const linkColumns = `id, trip_id, title, url, created_at`

func (r *pgLinkRepo) Create(ctx context.Context, link domain.Link) (domain.Link, error) {
	const q = `
		INSERT INTO links (trip_id, title, url)
		VALUES (@trip_id, @title, @url)
		RETURNING ` + linkColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"trip_id": link.TripID,
		"title":   link.Title,
		"url":     link.URL,
	})
	result, err := scanLink(row)
	if err != nil {
		return domain.Link{}, fmt.Errorf("repo.LinkRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgLinkRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Link, error) {
	const q = `
		SELECT ` + linkColumns + `
		FROM links
		WHERE trip_id = @trip_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.LinkRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	links := []domain.Link{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LinkRepo.ListByTripID: scan: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LinkRepo.ListByTripID: rows: %w", err)
	}
	return links, nil
}

func scanLink(s scanner) (domain.Link, error) {
	var (
		l          domain.Link
		id, tripID pgtype.UUID
	)
	if err := s.Scan(&id, &tripID, &l.Title, &l.URL, &l.CreatedAt); err != nil {
		return domain.Link{}, mapError(err)
	}
	l.ID = uuid.UUID(id.Bytes)
	l.TripID = uuid.UUID(tripID.Bytes)
	return l, nil
}
