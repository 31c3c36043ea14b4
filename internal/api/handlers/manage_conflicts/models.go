package manage_conflicts

import (
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	bookingModels "github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
	resolveConflicts "github.com/mabani-platform/MBN-BookingService/internal/usecase/resolve_conflicts"
)

// AlternativeSlotResponse альтернативный слот для переноса бронирования
type AlternativeSlotResponse struct {
	Date          string `json:"date"` // "2025-06-01"
	Time          string `json:"time"` // "08:00"
	Justification string `json:"justification"`
}

// ConflictResolutionResponse пара пересекающихся бронирований с предложением
type ConflictResolutionResponse struct {
	First        bookingModels.BookingResponse `json:"first"`
	Second       bookingModels.BookingResponse `json:"second"`
	Type         string                        `json:"type"`
	Alternatives []AlternativeSlotResponse     `json:"alternatives"`
	Impact       string                        `json:"impact"`
}

// ConflictsResponse ответ со списком конфликтов проекта
type ConflictsResponse struct {
	ProjectID   string                       `json:"projectId"`
	Resolutions []ConflictResolutionResponse `json:"resolutions"`
	DetectedAt  time.Time                    `json:"detectedAt"`
}

// FromUseCaseResponse конвертирует результат usecase в HTTP ответ
func FromUseCaseResponse(resp *resolveConflicts.Response, detectedAt time.Time) *ConflictsResponse {
	resolutions := make([]ConflictResolutionResponse, 0, len(resp.Resolutions))
	for _, res := range resp.Resolutions {
		alternatives := make([]AlternativeSlotResponse, 0, len(res.Alternatives))
		for _, alt := range res.Alternatives {
			alternatives = append(alternatives, AlternativeSlotResponse{
				Date:          alt.Date.Format(domain.DateFormat),
				Time:          alt.Time.String(),
				Justification: alt.Justification,
			})
		}

		resolutions = append(resolutions, ConflictResolutionResponse{
			First:        *bookingModels.FromDomainBooking(res.First),
			Second:       *bookingModels.FromDomainBooking(res.Second),
			Type:         string(res.Type),
			Alternatives: alternatives,
			Impact:       res.Impact,
		})
	}

	return &ConflictsResponse{
		ProjectID:   resp.ProjectID,
		Resolutions: resolutions,
		DetectedAt:  detectedAt,
	}
}
