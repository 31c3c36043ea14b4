package check_conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/pkg/ptr"
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByProjectAndDate(_ context.Context, _ string, _ time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.existing, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.Booking{
		ID:            "x",
		ProjectID:     "project-1",
		ServiceType:   domain.ServiceEquipmentRental,
		ScheduledDate: day,
		ScheduledTime: "08:00",
		DurationHours: 8,
		Status:        domain.StatusConfirmed,
	}

	uc := NewUseCase(&fakeBookingRepo{existing: []*domain.Booking{existing}}, nopLogger{})

	t.Run("overlapping candidate reports the conflict", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			ProjectID:   "project-1",
			ServiceType: domain.ServiceConcreteSupply,
			Date:        day,
			StartTime:   types.TimeString("10:00"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Conflicts, 1)
		assert.Equal(t, "x", resp.Conflicts[0].ID)
	})

	t.Run("free slot reports no conflicts", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			ProjectID:   "project-1",
			ServiceType: domain.ServiceInsurance,
			Date:        day,
			StartTime:   types.TimeString("17:00"),
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Conflicts)
	})

	t.Run("explicit duration overrides default", func(t *testing.T) {
		// insurance по умолчанию 1 час и не дотянулась бы до 08:00
		resp, err := uc.Execute(context.Background(), &Request{
			ProjectID:     "project-1",
			ServiceType:   domain.ServiceInsurance,
			Date:          day,
			StartTime:     types.TimeString("06:00"),
			DurationHours: ptr.Ptr(4),
		})
		require.NoError(t, err)
		assert.Len(t, resp.Conflicts, 1)
	})
}

func TestUseCase_Execute_UnknownServiceType(t *testing.T) {
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.Booking{
		ID:            "x",
		ProjectID:     "project-1",
		ServiceType:   domain.ServiceEquipmentRental,
		ScheduledDate: day,
		ScheduledTime: "08:00",
		DurationHours: 8,
		Status:        domain.StatusConfirmed,
	}

	uc := NewUseCase(&fakeBookingRepo{existing: []*domain.Booking{existing}}, nopLogger{})

	// Неизвестный тип с nil длительностью раньше давал дефолт 0 часов,
	// пустой интервал и тихий ответ "конфликтов нет" поверх занятого дня
	_, err := uc.Execute(context.Background(), &Request{
		ProjectID:   "project-1",
		ServiceType: domain.ServiceType("landscaping"),
		Date:        day,
		StartTime:   types.TimeString("08:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidServiceType)
}

func TestUseCase_Execute_DurationBounds(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	req := func(hours int) *Request {
		return &Request{
			ProjectID:     "project-1",
			ServiceType:   domain.ServiceInsurance,
			Date:          day,
			StartTime:     "09:00",
			DurationHours: ptr.Ptr(hours),
		}
	}

	_, err := uc.Execute(context.Background(), req(0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), req(-4))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), req(25))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), req(24))
	assert.NoError(t, err)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceType: domain.ServiceInsurance,
		Date:        day,
		StartTime:   "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ProjectID:   "project-1",
		ServiceType: domain.ServiceInsurance,
		StartTime:   "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ProjectID:   "project-1",
		ServiceType: domain.ServiceInsurance,
		Date:        day,
		StartTime:   "bad",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepoFailure(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{err: errors.New("db down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ProjectID:   "project-1",
		ServiceType: domain.ServiceInsurance,
		Date:        time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "09:00",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
