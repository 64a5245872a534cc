package wizard

import (
	"context"
	"log/slog"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Resume looks up the trip the user was planning when the app last ran.
// It reports false when no trip id is stored or the stored trip can no
// longer be loaded; the caller then shows the creation form. Errors are
// logged, never returned: start-up always ends on an interactive screen.
func Resume(ctx context.Context, store TripStore, trips TripFetcher, log *slog.Logger) (domain.Trip, bool) {
	if log == nil {
		log = slog.Default()
	}
	id, ok, err := store.Get(ctx)
	if err != nil {
		log.ErrorContext(ctx, "read stored trip id failed", "error", err)
		return domain.Trip{}, false
	}
	if !ok {
		return domain.Trip{}, false
	}
	trip, err := trips.GetTrip(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "load stored trip failed", "trip_id", id, "error", err)
		return domain.Trip{}, false
	}
	return trip, true
}
