package resolve_slots

import (
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
)

// SelectionStep tells the widget what the offered slots mean
type SelectionStep string

const (
	// StepSelectStart offers start points; picking one anchors a flexible
	// two-step selection and does not yet produce a booking
	StepSelectStart SelectionStep = "select_start"

	// StepSelectEnd offers end points for an anchored flexible selection
	StepSelectEnd SelectionStep = "select_end"

	// StepBook offers slots that book immediately as-is
	StepBook SelectionStep = "book"
)

// Request describes one slot-resolution query
type Request struct {
	ComponentID string

	// Day is the reference instant whose resource-timezone calendar day is
	// resolved. Zero value means "now".
	Day time.Time

	// ResourceID optionally restricts resolution to a single resource
	ResourceID string

	// AnchorStartTimeUTC is the provisionally chosen start time of a
	// flexible two-step selection. Nil while the user is picking a start.
	AnchorStartTimeUTC *time.Time
}

// Slot is one presentable interval
type Slot struct {
	StartTimeUTC    time.Time
	EndTimeUTC      time.Time
	DurationMinutes int
}

// ResourceSlots is the resolved slot list for one resource
type ResourceSlots struct {
	ResourceID   string
	ResourceName string
	Unit         domain.BookingUnit
	Step         SelectionStep
	Slots        []Slot
}

// Response is the resolved slot set for the query day
type Response struct {
	ComponentID string
	Day         time.Time
	Resources   []ResourceSlots
}
