package check_daily_eligibility

import (
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
)

// isResourceEligible reports whether a resource is bookable for the exact
// [startDay, endDay] range. All comparisons run at day granularity in the
// resource's own timezone.
//
// A resource qualifies only when some available entry contains both the
// range start day and end day; any unavailable entry touching either day
// disqualifies it regardless of availability. A resource without available
// time data is not bookable; unknown availability is treated as closed.
func isResourceEligible(resource *domain.BookingResource, startDay, endDay time.Time) bool {
	loc := resource.Location()
	rangeStart := domain.StartOfDay(startDay, loc)
	rangeEnd := domain.StartOfDay(endDay, loc)
	queried := domain.TimeRange{StartTimeUTC: rangeStart, EndTimeUTC: rangeEnd}

	available := false
	for _, at := range resource.AvailableTimes {
		if at.AtDayGranularity(loc).ContainsRange(queried) {
			available = true
			break
		}
	}
	if !available {
		return false
	}

	for _, ut := range resource.UnavailableTimes {
		if ut.AtDayGranularity(loc).OverlapsEndpoints(queried) {
			return false
		}
	}

	return true
}
