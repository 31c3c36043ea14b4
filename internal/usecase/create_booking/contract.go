package create_booking

import (
	"context"
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/internal/integrations/providerservice"
	"github.com/mabani-platform/MBN-BookingService/internal/integrations/timeline"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByProjectAndDate(ctx context.Context, projectID string, date time.Time) ([]*domain.Booking, error)
}

// ProviderServiceClient интерфейс клиента для ProviderService
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID string) (*providerservice.Provider, error)
}

// TimelineClient интерфейс клиента уведомлений таймлайна проекта
type TimelineClient interface {
	NotifyTimelineUpdated(ctx context.Context, projectID string, event timeline.Event, bookingID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
