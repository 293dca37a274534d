package submit_booking

import (
	"context"

	submitBooking "github.com/airjam-co/booking-resolver/internal/usecase/submit_booking"
)

// SubmitBookingUseCase confirms and forwards a finalized selection
type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

// Logger is the logging surface the handler depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
