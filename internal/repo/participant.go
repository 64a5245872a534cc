package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ParticipantRepo defines the persistence operations for Participants.
// Participants are created together with their trip by TripRepo.Create.
type ParticipantRepo interface {
	// ListByTripID returns the participants of a trip ordered by e-mail.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Confirm marks a participant as attending.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	Confirm(ctx context.Context, id uuid.UUID) error
}

type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT id, trip_id, name, email, is_confirmed, created_at
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY email`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	participants := []domain.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: scan: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: rows: %w", err)
	}
	return participants, nil
}

func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE participants SET is_confirmed = true WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ParticipantRepo.Confirm: %w", domain.ErrNotFound)
	}
	return nil
}

func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p          domain.Participant
		id, tripID pgtype.UUID
		name       pgtype.Text
	)
	if err := s.Scan(&id, &tripID, &name, &p.Email, &p.IsConfirmed, &p.CreatedAt); err != nil {
		return domain.Participant{}, mapError(err)
	}
	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	if name.Valid {
		p.Name = name.String
	}
	return p, nil
}
