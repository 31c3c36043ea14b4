package check_conflicts

import (
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	bookingModels "github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
	checkConflicts "github.com/mabani-platform/MBN-BookingService/internal/usecase/check_conflicts"
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

// CheckConflictsRequest запрос консультативной проверки конфликтов
type CheckConflictsRequest struct {
	ProjectID     string `json:"projectId"`
	ServiceType   string `json:"serviceType"`
	ScheduledDate string `json:"scheduledDate"` // "2025-06-01"
	ScheduledTime string `json:"scheduledTime"` // "08:00"
	DurationHours *int   `json:"durationHours,omitempty"`
}

// CheckConflictsResponse найденные пересечения с существующими бронированиями
type CheckConflictsResponse struct {
	HasConflicts bool                            `json:"hasConflicts"`
	Conflicts    []bookingModels.BookingResponse `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в usecase модель
func (r *CheckConflictsRequest) ToUseCaseRequest() (*checkConflicts.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.ScheduledDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.ScheduledTime)
	if err != nil {
		return nil, err
	}

	return &checkConflicts.Request{
		ProjectID:     r.ProjectID,
		ServiceType:   domain.ServiceType(r.ServiceType),
		Date:          date,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
	}, nil
}

// FromUseCaseResponse конвертирует результат usecase в HTTP ответ
func FromUseCaseResponse(resp *checkConflicts.Response) *CheckConflictsResponse {
	conflicts := make([]bookingModels.BookingResponse, 0, len(resp.Conflicts))
	for _, b := range resp.Conflicts {
		if dto := bookingModels.FromDomainBooking(b); dto != nil {
			conflicts = append(conflicts, *dto)
		}
	}

	return &CheckConflictsResponse{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    conflicts,
	}
}
