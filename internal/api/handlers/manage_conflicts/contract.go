package manage_conflicts

import (
	"context"

	resolveConflicts "github.com/mabani-platform/MBN-BookingService/internal/usecase/resolve_conflicts"
)

type ResolveConflictsUseCase interface {
	Execute(ctx context.Context, projectID string) (*resolveConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
