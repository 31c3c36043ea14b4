package create_booking

import (
	"fmt"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProjectID == "" {
		return fmt.Errorf("%w: projectID is required", ErrInvalidInput)
	}

	if req.ProviderID == "" {
		return fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}

	if !domain.IsValidServiceType(req.ServiceType) {
		return fmt.Errorf("%w: %s", ErrInvalidServiceType, req.ServiceType)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationHours != nil {
		if *req.DurationHours < domain.MinDurationHours || *req.DurationHours > domain.MaxDurationHours {
			return fmt.Errorf("%w: durationHours must be between %d and %d",
				ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
		}
	}

	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}

	if req.EstimatedCost < 0 {
		return fmt.Errorf("%w: estimatedCost must not be negative", ErrInvalidInput)
	}

	if req.Instructions != nil && len(*req.Instructions) > domain.MaxInstructionsLength {
		return fmt.Errorf("%w: instructions too long", ErrInvalidInput)
	}

	return nil
}

// resolveDuration возвращает длительность бронирования:
// явно указанную либо дефолтную для типа услуги
func resolveDuration(req *Request) int {
	if req.DurationHours != nil {
		return *req.DurationHours
	}
	return domain.DefaultDurationHours(req.ServiceType)
}
