// Package domain contains the core data types shared by the trip planner API
// server and its client. It only depends on google/uuid.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level aggregate; links, participants and activities belong
// to a trip. StartsAt and EndsAt are calendar days at 00:00 UTC.
type Trip struct {
	ID          uuid.UUID
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
	IsConfirmed bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TripDraft is the payload used to create a trip. Every address in
// EmailsToInvite becomes a participant of the new trip.
type TripDraft struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	EmailsToInvite []string
}
