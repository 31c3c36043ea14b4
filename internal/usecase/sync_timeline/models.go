package sync_timeline

import (
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
)

// TimelineAdjustment предложение скорректировать расписание:
// бронирование запланировано раньше услуги, от которой оно зависит
type TimelineAdjustment struct {
	BookingID     string    `json:"bookingId"`
	DependsOnID   string    `json:"dependsOnId"`
	SuggestedDate time.Time `json:"suggestedDate"` // День после зависимости
	Reason        string    `json:"reason"`
}

// Response результат синхронизации с таймлайном проекта
type Response struct {
	ProjectID    string                       `json:"projectId"`
	Bookings     []*domain.Booking            `json:"bookings"`
	Dependencies []domain.BookingDependencies `json:"dependencies"`
	Adjustments  []TimelineAdjustment         `json:"timelineAdjustments"`
}
