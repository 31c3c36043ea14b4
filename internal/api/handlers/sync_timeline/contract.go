package sync_timeline

import (
	"context"

	syncTimeline "github.com/mabani-platform/MBN-BookingService/internal/usecase/sync_timeline"
)

type SyncTimelineUseCase interface {
	Execute(ctx context.Context, projectID string) (*syncTimeline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
