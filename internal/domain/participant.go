package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a guest invited to a trip by e-mail.
// Name stays empty until the guest confirms and fills it in.
// Email is always stored lowercase.
type Participant struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Name        string
	Email       string
	IsConfirmed bool
	CreatedAt   time.Time
}
