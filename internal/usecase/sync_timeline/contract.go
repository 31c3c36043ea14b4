package sync_timeline

import (
	"context"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/internal/integrations/timeline"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByProject(ctx context.Context, projectID string) ([]*domain.Booking, error)
}

// TimelineClient интерфейс клиента уведомлений таймлайна проекта
type TimelineClient interface {
	NotifyTimelineUpdated(ctx context.Context, projectID string, event timeline.Event, bookingID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
