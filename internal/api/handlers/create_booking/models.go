package create_booking

import (
	"encoding/json"
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
	createBooking "github.com/mabani-platform/MBN-BookingService/internal/usecase/create_booking"
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProjectID     string          `json:"projectId"`
	ServiceType   string          `json:"serviceType"`
	ProviderID    string          `json:"providerId"`
	Details       json.RawMessage `json:"details,omitempty"`
	ScheduledDate string          `json:"scheduledDate"` // "2025-06-01"
	ScheduledTime string          `json:"scheduledTime"` // "08:00"
	DurationHours *int            `json:"durationHours,omitempty"`
	Location      string          `json:"location"`
	Instructions  *string         `json:"instructions,omitempty"`
	EstimatedCost float64         `json:"estimatedCost"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.ScheduledDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.ScheduledTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ProjectID:     r.ProjectID,
		ServiceType:   domain.ServiceType(r.ServiceType),
		ProviderID:    r.ProviderID,
		Details:       r.Details,
		Date:          date,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
		Location:      r.Location,
		Instructions:  r.Instructions,
		EstimatedCost: r.EstimatedCost,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
