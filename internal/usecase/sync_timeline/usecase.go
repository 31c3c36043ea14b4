package sync_timeline

import (
	"context"
	"fmt"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/internal/integrations/timeline"
)

// UseCase use case синхронизации бронирований с таймлайном проекта
// Строит статический граф зависимостей между бронированиями и предлагает
// корректировки для нарушенных ребер. Записей не делает
type UseCase struct {
	bookingRepo    BookingRepository
	timelineClient TimelineClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, timelineClient TimelineClient, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		timelineClient: timelineClient,
		logger:         logger,
	}
}

// Execute возвращает бронирования проекта, их зависимости и предложения
// по корректировке расписания
func (uc *UseCase) Execute(ctx context.Context, projectID string) (*Response, error) {
	uc.logger.Info("SyncTimeline: project=%s", projectID)

	if projectID == "" {
		return nil, fmt.Errorf("%w: projectID is required", ErrInvalidInput)
	}

	bookings, err := uc.bookingRepo.GetByProject(ctx, projectID)
	if err != nil {
		uc.logger.Error("SyncTimeline: failed to get bookings for project=%s: %v", projectID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	dependencies := domain.CalculateDependencies(bookings)
	adjustments := buildAdjustments(bookings, dependencies)

	// Best-effort сигнал о синхронизации; неудача не влияет на результат
	if err := uc.timelineClient.NotifyTimelineUpdated(ctx, projectID, timeline.EventTimelineSynced, ""); err != nil {
		uc.logger.Warn("SyncTimeline: failed to notify timeline for project=%s: %v", projectID, err)
	}

	uc.logger.Info("SyncTimeline: project=%s, %d bookings, %d adjustments",
		projectID, len(bookings), len(adjustments))

	return &Response{
		ProjectID:    projectID,
		Bookings:     bookings,
		Dependencies: dependencies,
		Adjustments:  adjustments,
	}, nil
}

// buildAdjustments находит нарушенный порядок на уровне типов услуг:
// бронирование запланировано раньше услуги, от которой его тип зависит
// по таблице правил (такие пары ребром зависимости не становятся).
// Предлагается перенос на следующий день после самой поздней зависимости
func buildAdjustments(bookings []*domain.Booking, _ []domain.BookingDependencies) []TimelineAdjustment {
	adjustments := make([]TimelineAdjustment, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		spec := domain.ServiceTypeSpecs[b.ServiceType]

		for _, requiredType := range spec.DependsOn {
			var latest *domain.Booking
			for _, other := range bookings {
				if !other.IsActive() || other.ServiceType != requiredType {
					continue
				}
				if !domain.DateOnly(other.ScheduledDate).After(domain.DateOnly(b.ScheduledDate)) {
					continue
				}
				if latest == nil || other.ScheduledDate.After(latest.ScheduledDate) {
					latest = other
				}
			}
			if latest == nil {
				continue
			}
			adjustments = append(adjustments, TimelineAdjustment{
				BookingID:     b.ID,
				DependsOnID:   latest.ID,
				SuggestedDate: domain.DateOnly(latest.ScheduledDate).AddDate(0, 0, 1),
				Reason: fmt.Sprintf("خدمة %s مجدولة قبل %s التي تعتمد عليها",
					domain.DisplayName(b.ServiceType),
					domain.DisplayName(latest.ServiceType)),
			})
		}
	}

	return adjustments
}
