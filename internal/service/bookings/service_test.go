package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	bookingRepo "github.com/mabani-platform/MBN-BookingService/internal/infra/storage/booking"
	"github.com/mabani-platform/MBN-BookingService/internal/integrations/timeline"
	"github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
)

type fakeRepo struct {
	byID map[string]*domain.Booking
	list []*domain.Booking

	updatedStatus domain.BookingStatus
	cancelReason  string
	reviewRating  int
	reviewText    string

	listErr error
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByProject(_ context.Context, _ string) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus, _ *string, _ *float64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id string, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelReason = reason
	return nil
}

func (f *fakeRepo) AddReview(_ context.Context, id string, rating int, review string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.reviewRating = rating
	f.reviewText = review
	return nil
}

type fakeTimelineClient struct {
	notified  int
	lastEvent timeline.Event
	err       error
}

func (f *fakeTimelineClient) NotifyTimelineUpdated(_ context.Context, _ string, event timeline.Event, _ string) error {
	f.notified++
	f.lastEvent = event
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newBooking(id string, serviceType domain.ServiceType, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		ProjectID:     "project-1",
		ServiceType:   serviceType,
		ProviderID:    "provider-1",
		ProviderName:  "مؤسسة الاختبار",
		ScheduledDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "14:00",
		DurationHours: 4,
		Location:      "جدة",
		EstimatedCost: 1200,
		Status:        status,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*domain.Booking{
		"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusPending),
	}}
	svc := NewService(repo, &fakeTimelineClient{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "2025-07-10", resp.ScheduledDate)
	assert.Equal(t, "14:00", resp.ScheduledTime)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByProject(t *testing.T) {
	repo := &fakeRepo{list: []*domain.Booking{
		newBooking("b1", domain.ServiceInsurance, domain.StatusPending),
		newBooking("b2", domain.ServiceConcreteSupply, domain.StatusConfirmed),
	}}
	svc := NewService(repo, &fakeTimelineClient{}, nopLogger{})

	resp, err := svc.GetByProject(context.Background(), "project-1")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "b1", resp.Bookings[0].ID)
}

func TestService_GetCalendar(t *testing.T) {
	waste := newBooking("b1", domain.ServiceWasteManagement, domain.StatusConfirmed)
	broken := newBooking("b2", domain.ServiceInsurance, domain.StatusPending)
	broken.ScheduledTime = "bad"

	repo := &fakeRepo{list: []*domain.Booking{waste, broken}}
	svc := NewService(repo, &fakeTimelineClient{}, nopLogger{})

	resp, err := svc.GetCalendar(context.Background(), "project-1")
	require.NoError(t, err)

	// Бронирование с нечитаемым временем в календарь не попадает
	require.Len(t, resp.Events, 1)

	event := resp.Events[0]
	assert.Equal(t, "b1", event.BookingID)
	assert.Equal(t, "إدارة النفايات - مؤسسة الاختبار", event.Title)
	assert.Equal(t, time.Date(2025, 7, 10, 14, 0, 0, 0, time.UTC), event.Start)
	assert.Equal(t, time.Date(2025, 7, 10, 18, 0, 0, 0, time.UTC), event.End)
	assert.Equal(t, "#10B981", event.Color)
	assert.Equal(t, "confirmed", event.Status)
	assert.Equal(t, 1200.0, event.Cost)
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Booking{
			"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusPending),
		}}
		tl := &fakeTimelineClient{}
		svc := NewService(repo, tl, nopLogger{})

		err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
		assert.Equal(t, 1, tl.notified)
		assert.Equal(t, timeline.EventStatusChanged, tl.lastEvent)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Booking{
			"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusPending),
		}}
		svc := NewService(repo, &fakeTimelineClient{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "archived"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("skipping stages is rejected", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Booking{
			"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusPending),
		}}
		svc := NewService(repo, &fakeTimelineClient{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "completed"})
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("terminal status is immutable", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Booking{
			"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusCompleted),
		}}
		tl := &fakeTimelineClient{}
		svc := NewService(repo, tl, nopLogger{})

		err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "pending"})
		assert.ErrorIs(t, err, ErrIllegalTransition)
		assert.Zero(t, tl.notified)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeRepo{byID: map[string]*domain.Booking{}}, &fakeTimelineClient{}, nopLogger{})

		err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("active booking is cancelled", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Booking{
			"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusConfirmed),
		}}
		tl := &fakeTimelineClient{}
		svc := NewService(repo, tl, nopLogger{})

		err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{Reason: "تغيرت خطة المشروع"})
		require.NoError(t, err)
		assert.Equal(t, "تغيرت خطة المشروع", repo.cancelReason)
		assert.Equal(t, timeline.EventBookingCancelled, tl.lastEvent)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Booking{
			"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusCompleted),
		}}
		svc := NewService(repo, &fakeTimelineClient{}, nopLogger{})

		err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{Reason: "r"})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Booking{
			"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusCancelled),
		}}
		svc := NewService(repo, &fakeTimelineClient{}, nopLogger{})

		err := svc.Cancel(context.Background(), "b1", &models.CancelBookingRequest{Reason: "r"})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestService_AddReview(t *testing.T) {
	t.Run("valid rating", func(t *testing.T) {
		repo := &fakeRepo{byID: map[string]*domain.Booking{
			"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusCompleted),
		}}
		svc := NewService(repo, &fakeTimelineClient{}, nopLogger{})

		err := svc.AddReview(context.Background(), "b1", &models.AddReviewRequest{Rating: 5, Review: "خدمة ممتازة"})
		require.NoError(t, err)
		assert.Equal(t, 5, repo.reviewRating)
		assert.Equal(t, "خدمة ممتازة", repo.reviewText)
	})

	t.Run("rating out of bounds", func(t *testing.T) {
		svc := NewService(&fakeRepo{byID: map[string]*domain.Booking{}}, &fakeTimelineClient{}, nopLogger{})

		err := svc.AddReview(context.Background(), "b1", &models.AddReviewRequest{Rating: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)

		err = svc.AddReview(context.Background(), "b1", &models.AddReviewRequest{Rating: 6})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeRepo{byID: map[string]*domain.Booking{}}, &fakeTimelineClient{}, nopLogger{})

		err := svc.AddReview(context.Background(), "missing", &models.AddReviewRequest{Rating: 4})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_TimelineFailureIsBestEffort(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*domain.Booking{
		"b1": newBooking("b1", domain.ServiceInsurance, domain.StatusPending),
	}}
	tl := &fakeTimelineClient{err: errors.New("timeline unavailable")}
	svc := NewService(repo, tl, nopLogger{})

	err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "confirmed"})
	assert.NoError(t, err)
}
