package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	bookingRepo "github.com/mabani-platform/MBN-BookingService/internal/infra/storage/booking"
	"github.com/mabani-platform/MBN-BookingService/internal/integrations/timeline"
	"github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями проекта
type Service struct {
	bookingRepo    BookingRepository
	timelineClient TimelineClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	timelineClient TimelineClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		timelineClient: timelineClient,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByProject получает все бронирования проекта,
// отсортированные по дате по возрастанию
func (s *Service) GetByProject(ctx context.Context, projectID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetByProject: fetching bookings for project=%s", projectID)

	bookings, err := s.bookingRepo.GetByProject(ctx, projectID)
	if err != nil {
		s.logger.Error("GetByProject: repository error for project=%s: %v", projectID, err)
		return nil, fmt.Errorf("%w: GetByProject - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByProject: fetched %d bookings for project=%s", len(bookings), projectID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCalendar проецирует бронирования проекта в события календаря
// Чистое read-side отображение: начало/конец из даты+времени+длительности,
// заголовок и цвет из таблицы типов услуг
func (s *Service) GetCalendar(ctx context.Context, projectID string) (*models.CalendarResponse, error) {
	s.logger.Info("GetCalendar: building calendar for project=%s", projectID)

	bookings, err := s.bookingRepo.GetByProject(ctx, projectID)
	if err != nil {
		s.logger.Error("GetCalendar: repository error for project=%s: %v", projectID, err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	events := make([]models.CalendarEventResponse, 0, len(bookings))
	for _, b := range bookings {
		start, err := b.StartsAt()
		if err != nil {
			// Бронирование с нечитаемым временем в календарь не попадает
			s.logger.Warn("GetCalendar: skipping booking id=%s with invalid time %q", b.ID, b.ScheduledTime)
			continue
		}
		end, err := b.EndsAt()
		if err != nil {
			s.logger.Warn("GetCalendar: skipping booking id=%s with invalid time %q", b.ID, b.ScheduledTime)
			continue
		}

		spec := domain.ServiceTypeSpecs[b.ServiceType]

		events = append(events, models.CalendarEventResponse{
			BookingID: b.ID,
			Title:     fmt.Sprintf("%s - %s", domain.DisplayName(b.ServiceType), b.ProviderName),
			Start:     start,
			End:       end,
			Color:     spec.Color,
			Status:    string(b.Status),
			Location:  b.Location,
			Cost:      b.EstimatedCost,
		})
	}

	s.logger.Info("GetCalendar: built %d events for project=%s", len(events), projectID)
	return &models.CalendarResponse{Events: events}, nil
}

// UpdateStatus обновляет статус бронирования
// Переходы проверяются по таблице статусов: из терминальных статусов
// (completed, cancelled) переходов нет
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%s",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus, req.Notes, req.ActualCost); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s updated to status=%s", bookingID, newStatus)

	s.notifyTimeline(ctx, booking.ProjectID, timeline.EventStatusChanged, bookingID)

	return nil
}

// Cancel отменяет бронирование с указанием причины
// Отмена возможна из любого нетерминального статуса
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled", bookingID)

	s.notifyTimeline(ctx, booking.ProjectID, timeline.EventBookingCancelled, bookingID)

	return nil
}

// AddReview записывает оценку и отзыв к бронированию
// Статус бронирования при этом не проверяется
func (s *Service) AddReview(ctx context.Context, bookingID string, req *models.AddReviewRequest) error {
	s.logger.Info("AddReview: adding review for booking id=%s, rating=%d", bookingID, req.Rating)

	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		s.logger.Warn("AddReview: invalid rating=%d for booking id=%s", req.Rating, bookingID)
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}

	if err := s.bookingRepo.AddReview(ctx, bookingID, req.Rating, req.Review); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("AddReview: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("AddReview: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: AddReview - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddReview: review saved for booking id=%s", bookingID)
	return nil
}

// notifyTimeline отправляет best-effort уведомление об изменении таймлайна
// Ошибка доставки логируется и не влияет на результат операции
func (s *Service) notifyTimeline(ctx context.Context, projectID string, event timeline.Event, bookingID string) {
	if err := s.timelineClient.NotifyTimelineUpdated(ctx, projectID, event, bookingID); err != nil {
		s.logger.Warn("notifyTimeline: failed to notify project=%s event=%s: %v", projectID, event, err)
	}
}
