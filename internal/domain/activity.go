package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is something planned for a given moment of a trip.
// OccursAt must fall on a day inside the trip's date range.
type Activity struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Title     string
	OccursAt  time.Time
	CreatedAt time.Time
}
