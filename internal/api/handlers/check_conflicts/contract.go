package check_conflicts

import (
	"context"

	checkConflicts "github.com/mabani-platform/MBN-BookingService/internal/usecase/check_conflicts"
)

type CheckConflictsUseCase interface {
	Execute(ctx context.Context, req *checkConflicts.Request) (*checkConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
