package sync_timeline

import (
	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	bookingModels "github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
	syncTimeline "github.com/mabani-platform/MBN-BookingService/internal/usecase/sync_timeline"
)

// DependenciesResponse вычисленные зависимости одного бронирования
type DependenciesResponse struct {
	BookingID   string   `json:"bookingId"`
	ServiceType string   `json:"serviceType"`
	DependsOn   []string `json:"dependsOn"`
	Blocks      []string `json:"blocks"`
}

// TimelineAdjustmentResponse предложение скорректировать расписание
type TimelineAdjustmentResponse struct {
	BookingID     string `json:"bookingId"`
	DependsOnID   string `json:"dependsOnId"`
	SuggestedDate string `json:"suggestedDate"` // "2025-06-01"
	Reason        string `json:"reason"`
}

// SyncTimelineResponse ответ синхронизации с таймлайном проекта
type SyncTimelineResponse struct {
	ProjectID    string                          `json:"projectId"`
	Bookings     []bookingModels.BookingResponse `json:"bookings"`
	Dependencies []DependenciesResponse          `json:"dependencies"`
	Adjustments  []TimelineAdjustmentResponse    `json:"timelineAdjustments"`
}

// FromUseCaseResponse конвертирует результат usecase в HTTP ответ
func FromUseCaseResponse(resp *syncTimeline.Response) *SyncTimelineResponse {
	bookings := make([]bookingModels.BookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		if dto := bookingModels.FromDomainBooking(b); dto != nil {
			bookings = append(bookings, *dto)
		}
	}

	dependencies := make([]DependenciesResponse, 0, len(resp.Dependencies))
	for _, d := range resp.Dependencies {
		dependencies = append(dependencies, DependenciesResponse{
			BookingID:   d.BookingID,
			ServiceType: string(d.ServiceType),
			DependsOn:   d.DependsOn,
			Blocks:      d.Blocks,
		})
	}

	adjustments := make([]TimelineAdjustmentResponse, 0, len(resp.Adjustments))
	for _, a := range resp.Adjustments {
		adjustments = append(adjustments, TimelineAdjustmentResponse{
			BookingID:     a.BookingID,
			DependsOnID:   a.DependsOnID,
			SuggestedDate: a.SuggestedDate.Format(domain.DateFormat),
			Reason:        a.Reason,
		})
	}

	return &SyncTimelineResponse{
		ProjectID:    resp.ProjectID,
		Bookings:     bookings,
		Dependencies: dependencies,
		Adjustments:  adjustments,
	}
}
