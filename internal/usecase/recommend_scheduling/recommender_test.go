package recommend_scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByProject(_ context.Context, _ string) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(serviceType domain.ServiceType, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            string(serviceType),
		ProjectID:     "project-1",
		ServiceType:   serviceType,
		ScheduledDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "08:00",
		DurationHours: 4,
		Status:        status,
	}
}

func TestBuildRecommendations_EmptyProject(t *testing.T) {
	now := time.Date(2025, 7, 1, 15, 30, 0, 0, time.UTC)

	recommendations := buildRecommendations(nil, now)
	require.Len(t, recommendations, len(domain.RecommendationOrder))

	// Кандидатная дата стартует с now+2 дня и сдвигается на буфер типа:
	// design(+7), equipment(+1), concrete(+2), waste(+1), insurance(+0)
	day := func(d int) time.Time {
		return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
	}

	expected := []struct {
		serviceType domain.ServiceType
		date        time.Time
		start       types.TimeString
	}{
		{domain.ServiceDesignOffice, day(3), "10:00"},
		{domain.ServiceEquipmentRental, day(10), "07:00"},
		{domain.ServiceConcreteSupply, day(11), "06:00"},
		{domain.ServiceWasteManagement, day(13), "14:00"},
		{domain.ServiceInsurance, day(14), "09:00"},
	}

	for i, want := range expected {
		assert.Equal(t, want.serviceType, recommendations[i].ServiceType)
		assert.Equal(t, want.date, recommendations[i].Date, string(want.serviceType))
		assert.Equal(t, want.start, recommendations[i].Time)
		assert.NotEmpty(t, recommendations[i].Justification)
	}
}

func TestBuildRecommendations_SkipsBookedTypes(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		booking(domain.ServiceDesignOffice, domain.StatusCompleted),
		booking(domain.ServiceEquipmentRental, domain.StatusConfirmed),
	}

	recommendations := buildRecommendations(bookings, now)
	require.Len(t, recommendations, 3)

	assert.Equal(t, domain.ServiceConcreteSupply, recommendations[0].ServiceType)
	assert.Equal(t, domain.ServiceWasteManagement, recommendations[1].ServiceType)
	assert.Equal(t, domain.ServiceInsurance, recommendations[2].ServiceType)

	// Первая рекомендация начинается с now+2, буферы пропущенных типов не применяются
	day := func(d int) time.Time {
		return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
	}
	assert.Equal(t, day(3), recommendations[0].Date)
	assert.Equal(t, day(5), recommendations[1].Date)
	assert.Equal(t, day(6), recommendations[2].Date)
}

func TestBuildRecommendations_CancelledBookingDoesNotCount(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		booking(domain.ServiceDesignOffice, domain.StatusCancelled),
	}

	recommendations := buildRecommendations(bookings, now)
	require.Len(t, recommendations, len(domain.RecommendationOrder))
	assert.Equal(t, domain.ServiceDesignOffice, recommendations[0].ServiceType)
}

func TestBuildBenefit(t *testing.T) {
	recommendations := buildRecommendations(nil, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))

	benefit := buildBenefit(recommendations)
	assert.Equal(t, 5*500.0, benefit.CostSavings)
	assert.Equal(t, 5*0.5, benefit.TimeSavingsDays)
	assert.Equal(t, 85.0, benefit.EfficiencyPercent)

	empty := buildBenefit(nil)
	assert.Zero(t, empty.CostSavings)
	assert.Zero(t, empty.TimeSavingsDays)
	assert.Equal(t, 85.0, empty.EfficiencyPercent)
}

func TestBuildWeatherNotes(t *testing.T) {
	recommendations := buildRecommendations(nil, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))

	notes := buildWeatherNotes(recommendations)
	require.Len(t, notes, len(recommendations))
	for i, note := range notes {
		assert.Equal(t, recommendations[i].ServiceType, note.ServiceType)
		assert.Equal(t, weatherImpactModerate, note.Impact)
		assert.Len(t, note.Adjustments, 2)
	}
}

func TestUseCase_Execute(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), "project-1")
	require.NoError(t, err)

	assert.Equal(t, "project-1", resp.ProjectID)
	assert.Len(t, resp.Recommendations, 5)
	assert.Len(t, resp.WeatherNotes, 5)
	assert.Equal(t, 2500.0, resp.Benefit.CostSavings)
}

func TestUseCase_Execute_EmptyProjectID(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepoFailure(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{err: errors.New("db down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), "project-1")
	assert.ErrorIs(t, err, ErrInternal)
}
