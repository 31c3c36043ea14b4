package check_conflicts

import (
	"context"
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByProjectAndDate(ctx context.Context, projectID string, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
