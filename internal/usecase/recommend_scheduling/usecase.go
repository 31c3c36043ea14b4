package recommend_scheduling

import (
	"context"
	"fmt"
)

// UseCase use case построения рекомендованного календаря бронирований
// Эвристическое жадное размещение по фиксированным таблицам, не оптимизатор
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает рекомендации по бронированию недостающих услуг проекта
func (uc *UseCase) Execute(ctx context.Context, projectID string) (*Response, error) {
	uc.logger.Info("RecommendScheduling: project=%s", projectID)

	if projectID == "" {
		return nil, fmt.Errorf("%w: projectID is required", ErrInvalidInput)
	}

	bookings, err := uc.bookingRepo.GetByProject(ctx, projectID)
	if err != nil {
		uc.logger.Error("RecommendScheduling: failed to get bookings for project=%s: %v", projectID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	recommendations := buildRecommendations(bookings, uc.timeProvider.Now())

	uc.logger.Info("RecommendScheduling: project=%s, %d recommendations", projectID, len(recommendations))

	return &Response{
		ProjectID:       projectID,
		Recommendations: recommendations,
		Benefit:         buildBenefit(recommendations),
		WeatherNotes:    buildWeatherNotes(recommendations),
	}, nil
}
