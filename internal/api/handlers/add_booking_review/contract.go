package add_booking_review

import (
	"context"

	"github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	AddReview(ctx context.Context, bookingID string, req *models.AddReviewRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
