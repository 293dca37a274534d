package resolve_slots

import (
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
)

// filterSlotsForLocalDay returns the ordered subsequence of availableTimes
// whose start falls on the same calendar day as ref, where "same day" is
// evaluated by numeric year/month/day in the resource's timezone. Entries
// without a start time are excluded; input order is preserved.
func filterSlotsForLocalDay(availableTimes []domain.TimeRange, ref time.Time, loc *time.Location) []domain.TimeRange {
	relevant := make([]domain.TimeRange, 0, len(availableTimes))
	for _, tr := range availableTimes {
		if tr.IsZero() {
			continue
		}
		if domain.SameLocalDay(tr.StartTimeUTC, ref, loc) {
			relevant = append(relevant, tr)
		}
	}
	return relevant
}

// enumerateEndSlots scans the day candidates in order and collects the end
// times offered for an anchored flexible selection.
//
// This is a single forward pass with a mutable cursor, not a filter: once a
// candidate starts after the cursor (a gap in the availability data), the
// scan terminates so that only one contiguous block of end times is offered.
// Later candidates that would individually satisfy the duration constraints
// must not appear after a gap.
func enumerateEndSlots(resource *domain.BookingResource, candidates []domain.TimeRange, anchorStart time.Time) []domain.TimeRange {
	offered := make([]domain.TimeRange, 0, len(candidates))
	var currentEndTime time.Time

	for _, slot := range candidates {
		// A booking cannot end before it starts
		if slot.StartTimeUTC.Before(anchorStart) {
			continue
		}

		duration := slot.EndTimeUTC.Sub(anchorStart)
		durationMin := int(duration / time.Minute)

		if resource.MinimumBookingDurationInMin > 0 && durationMin < resource.MinimumBookingDurationInMin {
			continue
		}
		if resource.MaximumBookingDurationInMin > 0 && durationMin > resource.MaximumBookingDurationInMin {
			continue
		}
		// Durations must land exactly on the booking increment; sub-minute
		// remainders never qualify
		if duration%time.Minute != 0 || durationMin%resource.BookingIncrementsInMin != 0 {
			continue
		}

		if !currentEndTime.IsZero() && slot.StartTimeUTC.After(currentEndTime) {
			break
		}

		offered = append(offered, slot)
		currentEndTime = slot.EndTimeUTC
	}

	return offered
}

// prospectiveSelection builds the offered interval for one accepted candidate
func prospectiveSelection(resource *domain.BookingResource, start, end time.Time) domain.BookingRequestResource {
	return domain.BookingRequestResource{
		Resource:     resource,
		StartTimeUTC: start,
		EndTimeUTC:   end,
		Timezone:     resource.Timezone,
	}
}

func toSlot(sel domain.BookingRequestResource) Slot {
	return Slot{
		StartTimeUTC:    sel.StartTimeUTC,
		EndTimeUTC:      sel.EndTimeUTC,
		DurationMinutes: sel.DurationMinutes(),
	}
}

// resolveResource computes the presentable slot list for one non-daily
// resource. Malformed configuration yields an empty list, never an error.
func resolveResource(resource *domain.BookingResource, day time.Time, anchor *time.Time) ResourceSlots {
	result := ResourceSlots{
		ResourceID:   resource.ID,
		ResourceName: resource.Name,
		Unit:         resource.Unit,
		Step:         StepBook,
		Slots:        []Slot{},
	}

	candidates := filterSlotsForLocalDay(resource.AvailableTimes, day, resource.Location())

	if !resource.IsFlexible() {
		// Fixed-unit resources book day candidates as-is, no two-step flow
		for _, slot := range candidates {
			result.Slots = append(result.Slots, toSlot(prospectiveSelection(resource, slot.StartTimeUTC, slot.EndTimeUTC)))
		}
		return result
	}

	result.Step = StepSelectStart
	if anchor != nil {
		result.Step = StepSelectEnd
	}

	// A flexible resource without a positive increment is misconfigured;
	// fail closed and offer nothing
	if !resource.HasValidIncrements() {
		return result
	}

	if anchor == nil {
		for _, slot := range candidates {
			result.Slots = append(result.Slots, toSlot(prospectiveSelection(resource, slot.StartTimeUTC, slot.EndTimeUTC)))
		}
		return result
	}

	for _, slot := range enumerateEndSlots(resource, candidates, *anchor) {
		result.Slots = append(result.Slots, toSlot(prospectiveSelection(resource, *anchor, slot.EndTimeUTC)))
	}
	return result
}
