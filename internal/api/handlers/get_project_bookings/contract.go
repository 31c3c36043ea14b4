package get_project_bookings

import (
	"context"

	"github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByProject(ctx context.Context, projectID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
