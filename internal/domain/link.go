package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is a titled URL shared with every participant of a trip.
type Link struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Title     string
	URL       string
	CreatedAt time.Time
}
