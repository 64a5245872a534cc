package wizard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
)

// MinDestinationLength is the minimum destination length when creating a trip.
const MinDestinationLength = 4

// ValidateDetails checks the destination and date range shared by the
// creation form and the trip editor. minLen is the minimum number of
// characters of the trimmed destination; 0 only requires it to be non-blank.
func ValidateDetails(destination string, dates calendar.Range, minLen int) error {
	d := strings.TrimSpace(destination)
	if d == "" || !calendar.Complete(dates) {
		return fmt.Errorf("%w: fill in every field", domain.ErrValidation)
	}
	if utf8.RuneCountInString(d) < minLen {
		return fmt.Errorf("%w: destination must have at least %d characters", domain.ErrValidation, minLen)
	}
	return nil
}
