package get_date_bounds

import (
	"context"

	getDateBounds "github.com/airjam-co/booking-resolver/internal/usecase/get_date_bounds"
)

// GetDateBoundsUseCase computes date-picker bounds for a daily-unit resource
type GetDateBoundsUseCase interface {
	Execute(ctx context.Context, req *getDateBounds.Request) (*getDateBounds.Response, error)
}

// Logger is the logging surface the handler depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
