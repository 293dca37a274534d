package get_daily_eligibility

import (
	"context"

	checkDailyEligibility "github.com/airjam-co/booking-resolver/internal/usecase/check_daily_eligibility"
)

// CheckDailyEligibilityUseCase computes per-resource daily bookability
type CheckDailyEligibilityUseCase interface {
	Execute(ctx context.Context, req *checkDailyEligibility.Request) (*checkDailyEligibility.Response, error)
}

// Logger is the logging surface the handler depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
