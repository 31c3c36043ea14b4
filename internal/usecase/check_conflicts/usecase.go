package check_conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

// Request параметры кандидата на бронирование
type Request struct {
	ProjectID     string
	ServiceType   domain.ServiceType
	Date          time.Time
	StartTime     types.TimeString
	DurationHours *int // nil = дефолт типа услуги
}

// Response список конфликтующих бронирований (пустой = конфликтов нет)
type Response struct {
	Conflicts []*domain.Booking
}

// UseCase use case консультативной проверки конфликтов
// Тот же детектор, что и на пути записи, но без транзакции:
// результат носит справочный характер и не резервирует слот
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

// Execute возвращает все бронирования проекта, пересекающиеся с кандидатом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: project=%s, date=%s, time=%s",
		req.ProjectID, req.Date.Format(domain.DateFormat), req.StartTime)

	if req.ProjectID == "" {
		return nil, fmt.Errorf("%w: projectID is required", ErrInvalidInput)
	}
	if !domain.IsValidServiceType(req.ServiceType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidServiceType, req.ServiceType)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	// Неизвестный тип или нулевая длительность дали бы пустой интервал,
	// который ни с чем не пересекается: консультативный ответ "конфликтов нет"
	// разошелся бы с createBooking на тех же входных данных
	durationHours := domain.DefaultDurationHours(req.ServiceType)
	if req.DurationHours != nil {
		if *req.DurationHours < domain.MinDurationHours || *req.DurationHours > domain.MaxDurationHours {
			return nil, fmt.Errorf("%w: durationHours must be between %d and %d",
				ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHours)
		}
		durationHours = *req.DurationHours
	}

	existing, err := uc.bookingRepo.GetByProjectAndDate(ctx, req.ProjectID, req.Date)
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	conflicts := domain.FindConflicts(req.Date, req.StartTime, durationHours, existing)

	uc.logger.Info("CheckConflicts: found %d conflicts for project=%s", len(conflicts), req.ProjectID)

	return &Response{Conflicts: conflicts}, nil
}
