package get_date_bounds

import (
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
)

// minSelectableDate computes the earliest selectable date. Resources that
// allow past-date selection have no lower bound; otherwise the bound is
// "now", pushed later by an explicit availability start when that lies in
// the future.
func minSelectableDate(resource *domain.BookingResource, now time.Time) *time.Time {
	if resource.AllowPastDateSelection {
		return nil
	}

	min := now
	if !resource.AvailabilityStartTimeUTC.IsZero() && resource.AvailabilityStartTimeUTC.After(now) {
		min = resource.AvailabilityStartTimeUTC
	}
	return &min
}

// maxSelectableDate computes the latest selectable date from the resource's
// reservable-until policy. Nil means unbounded.
func maxSelectableDate(resource *domain.BookingResource, now time.Time) *time.Time {
	deadline, bounded := resource.ReservableUntil.Deadline(now)
	if !bounded {
		return nil
	}
	return &deadline
}

// isDateDisabled reports whether one start-of-day instant must be disabled
// in the picker. A date is disabled when it falls outside the selection
// bounds or when an unavailable entry touches it at day granularity.
//
// Dates with no matching available entry and no exclusion stay selectable:
// the picker view defaults unknown days to open, while final daily
// eligibility defaults unknown resources to unbookable. Keep both defaults
// as they are; unifying them changes which days a user can pick.
func isDateDisabled(resource *domain.BookingResource, day time.Time, minDate, maxDate *time.Time) bool {
	loc := resource.Location()

	if minDate != nil && day.Before(domain.StartOfDay(*minDate, loc)) {
		return true
	}
	if maxDate != nil && day.After(domain.StartOfDay(*maxDate, loc)) {
		return true
	}

	queried := domain.TimeRange{StartTimeUTC: day, EndTimeUTC: day}
	for _, ut := range resource.UnavailableTimes {
		if ut.AtDayGranularity(loc).OverlapsEndpoints(queried) {
			return true
		}
	}

	return false
}

// disabledDatesInWindow walks the window day by day in the resource's
// timezone and collects the dates to disable
func disabledDatesInWindow(resource *domain.BookingResource, windowStart, windowEnd time.Time, minDate, maxDate *time.Time) []time.Time {
	loc := resource.Location()
	disabled := []time.Time{}

	last := domain.StartOfDay(windowEnd, loc)
	for day := domain.StartOfDay(windowStart, loc); !day.After(last); day = day.AddDate(0, 0, 1) {
		if isDateDisabled(resource, day, minDate, maxDate) {
			disabled = append(disabled, day)
		}
	}

	return disabled
}
