package get_day_slots

import (
	"time"

	"github.com/airjam-co/booking-resolver/internal/domain"
	resolveSlots "github.com/airjam-co/booking-resolver/internal/usecase/resolve_slots"
)

// DaySlotsResponse is the HTTP response for a day-slot query
type DaySlotsResponse struct {
	ComponentID string          `json:"componentId"`
	Date        string          `json:"date"`
	Resources   []ResourceSlots `json:"resources"`
}

// ResourceSlots is the slot list for one resource
type ResourceSlots struct {
	ResourceID   string `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	BookingUnit  string `json:"bookingUnit"`
	Step         string `json:"selectionStep"`
	Slots        []Slot `json:"slots"`
}

// Slot is one presentable interval
type Slot struct {
	StartTimeUTC    time.Time `json:"startTimeUtc"`
	EndTimeUTC      time.Time `json:"endTimeUtc"`
	DurationMinutes int       `json:"durationMinutes"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *resolveSlots.Response) *DaySlotsResponse {
	resources := make([]ResourceSlots, len(resp.Resources))
	for i, res := range resp.Resources {
		slots := make([]Slot, len(res.Slots))
		for j, slot := range res.Slots {
			slots[j] = Slot{
				StartTimeUTC:    slot.StartTimeUTC,
				EndTimeUTC:      slot.EndTimeUTC,
				DurationMinutes: slot.DurationMinutes,
			}
		}
		resources[i] = ResourceSlots{
			ResourceID:   res.ResourceID,
			ResourceName: res.ResourceName,
			BookingUnit:  string(res.Unit),
			Step:         string(res.Step),
			Slots:        slots,
		}
	}

	return &DaySlotsResponse{
		ComponentID: resp.ComponentID,
		Date:        resp.Day.Format(domain.DateFormat),
		Resources:   resources,
	}
}

// ToUseCaseRequest builds the use case request from query parameters
func ToUseCaseRequest(componentID, resourceID, dateStr, anchorStr string) (*resolveSlots.Request, error) {
	req := &resolveSlots.Request{
		ComponentID: componentID,
		ResourceID:  resourceID,
	}

	if dateStr != "" {
		day, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Day = day
	}

	if anchorStr != "" {
		anchor, err := time.Parse(time.RFC3339, anchorStr)
		if err != nil {
			return nil, err
		}
		req.AnchorStartTimeUTC = &anchor
	}

	return req, nil
}
