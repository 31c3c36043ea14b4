package get_calendar

import (
	"context"

	"github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetCalendar(ctx context.Context, projectID string) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
