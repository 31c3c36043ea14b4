package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	providerClient "github.com/mabani-platform/MBN-BookingService/internal/integrations/providerservice"
	"github.com/mabani-platform/MBN-BookingService/internal/integrations/timeline"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	providerClient ProviderServiceClient
	timelineClient TimelineClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerClient ProviderServiceClient,
	timelineClient TimelineClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		providerClient: providerClient,
		timelineClient: timelineClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции
// с блокировкой строк той же даты (FOR UPDATE): два параллельных запроса
// на пересекающийся интервал не могут оба пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: project=%s, service=%s, provider=%s, date=%s, time=%s",
		req.ProjectID, req.ServiceType, req.ProviderID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if domain.DateOnly(req.Date).Before(domain.DateOnly(now)) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Разрешаем имя поставщика для денормализации в запись
	provider, err := uc.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			uc.logger.Warn("CreateBooking: provider id=%s not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateBooking: failed to get provider id=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	durationHours := resolveDuration(req)

	var result *domain.Booking

	// 4. Проверка конфликтов + вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Бронирования проекта на эту дату (не cancelled), с блокировкой строк
		existing, err := uc.bookingRepo.GetByProjectAndDate(txCtx, req.ProjectID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.2. Детектор конфликтов: пересечение полуоткрытых интервалов
		conflicts := domain.FindConflicts(req.Date, req.StartTime, durationHours, existing)
		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: %d conflicting bookings for project=%s on %s",
				len(conflicts), req.ProjectID, req.Date.Format(domain.DateFormat))
			return fmt.Errorf("%w: %d overlapping bookings", ErrBookingConflict, len(conflicts))
		}

		// 4.3. Создаем запись со статусом pending
		booking := &domain.Booking{
			ID:            uuid.NewString(),
			ProjectID:     req.ProjectID,
			ServiceType:   req.ServiceType,
			ProviderID:    req.ProviderID,
			ProviderName:  provider.Name,
			Details:       req.Details,
			ScheduledDate: domain.DateOnly(req.Date),
			ScheduledTime: req.StartTime,
			DurationHours: durationHours,
			Location:      req.Location,
			Instructions:  req.Instructions,
			EstimatedCost: req.EstimatedCost,
			Status:        domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	// 5. Best-effort уведомление таймлайна проекта
	// Ошибка доставки логируется и не откатывает созданное бронирование
	if err := uc.timelineClient.NotifyTimelineUpdated(ctx, req.ProjectID, timeline.EventBookingCreated, result.ID); err != nil {
		uc.logger.Warn("CreateBooking: failed to notify timeline for project=%s: %v", req.ProjectID, err)
	}

	return &Response{Booking: result}, nil
}
