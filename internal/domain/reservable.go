package domain

import "time"

// ReservableUntilType discriminates how far into the future a resource
// accepts reservations
type ReservableUntilType string

const (
	// ReservableIndefinitely places no upper bound on reservation dates
	ReservableIndefinitely ReservableUntilType = "indefinitely"

	// ReservableUntilTimestamp bounds reservations by a fixed instant
	ReservableUntilTimestamp ReservableUntilType = "timestamp"

	// ReservableUntilDuration bounds reservations by a rolling window from now
	ReservableUntilDuration ReservableUntilType = "duration"
)

// DurationUnit is the granularity of a rolling reservable window
type DurationUnit string

const (
	DurationUnitYear   DurationUnit = "year"
	DurationUnitMonth  DurationUnit = "month"
	DurationUnitWeek   DurationUnit = "week"
	DurationUnitDay    DurationUnit = "day"
	DurationUnitHour   DurationUnit = "hour"
	DurationUnitMinute DurationUnit = "minute"
	DurationUnitSecond DurationUnit = "second"
)

// ReservableUntilPolicy describes the provider-configured limit on how far
// ahead a resource may be reserved
type ReservableUntilPolicy struct {
	Type      ReservableUntilType `json:"type,omitempty"`
	Timestamp time.Time           `json:"timestamp,omitempty"`
	Amount    int                 `json:"amount,omitempty"`
	Unit      DurationUnit        `json:"unit,omitempty"`
}

// Deadline computes the latest reservable instant given the current time.
// Rolling windows use calendar-aware addition: month and year arithmetic
// respects month lengths and leap years rather than fixed-day approximations.
// The second return value is false when the policy places no bound.
func (p ReservableUntilPolicy) Deadline(now time.Time) (time.Time, bool) {
	switch p.Type {
	case ReservableUntilTimestamp:
		if p.Timestamp.IsZero() {
			return time.Time{}, false
		}
		return p.Timestamp, true
	case ReservableUntilDuration:
		if p.Amount <= 0 {
			return time.Time{}, false
		}
		switch p.Unit {
		case DurationUnitYear:
			return now.AddDate(p.Amount, 0, 0), true
		case DurationUnitMonth:
			return now.AddDate(0, p.Amount, 0), true
		case DurationUnitWeek:
			return now.AddDate(0, 0, 7*p.Amount), true
		case DurationUnitDay:
			return now.AddDate(0, 0, p.Amount), true
		case DurationUnitHour:
			return now.Add(time.Duration(p.Amount) * time.Hour), true
		case DurationUnitMinute:
			return now.Add(time.Duration(p.Amount) * time.Minute), true
		case DurationUnitSecond:
			return now.Add(time.Duration(p.Amount) * time.Second), true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
