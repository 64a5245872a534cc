package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/wizard"
)

func TestValidateDetails(t *testing.T) {
	week := juneWeek(t)
	pending := calendar.Pending(day(t, "2024-06-12"))

	tests := []struct {
		name        string
		destination string
		dates       calendar.Range
		minLen      int
		wantErr     bool
	}{
		{"valid creation", "Rio de Janeiro", week, wizard.MinDestinationLength, false},
		{"too short for creation", "Rio", week, wizard.MinDestinationLength, true},
		{"short is fine when editing", "Rio", week, 0, false},
		{"blank destination", "   ", week, 0, true},
		{"pending range", "Rio de Janeiro", pending, wizard.MinDestinationLength, true},
		{"unset range", "Rio de Janeiro", calendar.Range{}, 0, true},
		{"padding does not count", "  Rio  ", week, wizard.MinDestinationLength, true},
		{"multi-byte characters count once", "São ", week, wizard.MinDestinationLength, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := wizard.ValidateDetails(tc.destination, tc.dates, tc.minLen)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLink(t *testing.T) {
	assert.NoError(t, wizard.ValidateLink("Hotel", "https://hotel.example.com/booking?id=1"))
	assert.ErrorIs(t, wizard.ValidateLink(" ", "https://hotel.example.com"), domain.ErrValidation)
	assert.ErrorIs(t, wizard.ValidateLink("Hotel", "hotel.example.com"), domain.ErrValidation)
	assert.ErrorIs(t, wizard.ValidateLink("Hotel", "ftp://hotel.example.com"), domain.ErrValidation)
	assert.ErrorIs(t, wizard.ValidateLink("Hotel", ""), domain.ErrValidation)
}
