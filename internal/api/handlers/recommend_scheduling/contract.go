package recommend_scheduling

import (
	"context"

	recommendScheduling "github.com/mabani-platform/MBN-BookingService/internal/usecase/recommend_scheduling"
)

type RecommendSchedulingUseCase interface {
	Execute(ctx context.Context, projectID string) (*recommendScheduling.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
