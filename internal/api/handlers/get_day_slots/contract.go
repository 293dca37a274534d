package get_day_slots

import (
	"context"

	resolveSlots "github.com/airjam-co/booking-resolver/internal/usecase/resolve_slots"
)

// ResolveSlotsUseCase resolves the presentable slots for a day
type ResolveSlotsUseCase interface {
	Execute(ctx context.Context, req *resolveSlots.Request) (*resolveSlots.Response, error)
}

// Logger is the logging surface the handler depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
