package resolve_conflicts

import (
	"context"
	"fmt"
)

// UseCase use case ретроспективного поиска конфликтов проекта
// Только чтение: возвращает консультативный отчет, который вызывающая
// сторона (UI) может применить через отмену/пересоздание бронирований
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute находит все пересечения бронирований проекта и предлагает разрешения
func (uc *UseCase) Execute(ctx context.Context, projectID string) (*Response, error) {
	uc.logger.Info("ResolveConflicts: scanning project=%s", projectID)

	if projectID == "" {
		return nil, fmt.Errorf("%w: projectID is required", ErrInvalidInput)
	}

	bookings, err := uc.bookingRepo.GetByProject(ctx, projectID)
	if err != nil {
		uc.logger.Error("ResolveConflicts: failed to get bookings for project=%s: %v", projectID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resolutions := findOverlaps(bookings)

	uc.logger.Info("ResolveConflicts: found %d conflicts for project=%s", len(resolutions), projectID)

	return &Response{
		ProjectID:   projectID,
		Resolutions: resolutions,
	}, nil
}
