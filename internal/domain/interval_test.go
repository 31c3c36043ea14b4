package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

func TestNewInterval(t *testing.T) {
	i := NewInterval("08:00", 4)
	assert.Equal(t, 8*60, i.Start)
	assert.Equal(t, 12*60, i.End)
	assert.False(t, i.IsEmpty())

	// Конец обрезается по границе суток
	i = NewInterval("22:00", 8)
	assert.Equal(t, 22*60, i.Start)
	assert.Equal(t, 24*60, i.End)

	// Невалидное время дает пустой интервал
	i = NewInterval("bad", 4)
	assert.True(t, i.IsEmpty())
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    Interval{Start: 8 * 60, End: 12 * 60},
			b:    Interval{Start: 10 * 60, End: 14 * 60},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{Start: 8 * 60, End: 18 * 60},
			b:    Interval{Start: 10 * 60, End: 12 * 60},
			want: true,
		},
		{
			name: "identical",
			a:    Interval{Start: 8 * 60, End: 12 * 60},
			b:    Interval{Start: 8 * 60, End: 12 * 60},
			want: true,
		},
		{
			name: "back to back is not a conflict",
			a:    Interval{Start: 8 * 60, End: 12 * 60},
			b:    Interval{Start: 12 * 60, End: 16 * 60},
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{Start: 8 * 60, End: 10 * 60},
			b:    Interval{Start: 14 * 60, End: 16 * 60},
			want: false,
		},
		{
			name: "empty never overlaps",
			a:    Interval{},
			b:    Interval{Start: 0, End: 24 * 60},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func testBooking(id string, serviceType ServiceType, date time.Time, start types.TimeString, durationHours int, status BookingStatus) *Booking {
	return &Booking{
		ID:            id,
		ProjectID:     "project-1",
		ServiceType:   serviceType,
		ProviderID:    "provider-1",
		ProviderName:  "مؤسسة البناء الحديث",
		ScheduledDate: date,
		ScheduledTime: start,
		DurationHours: durationHours,
		Status:        status,
	}
}

func TestBookingsOverlap(t *testing.T) {
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	a := testBooking("a", ServiceEquipmentRental, day, "08:00", 8, StatusConfirmed)
	b := testBooking("b", ServiceConcreteSupply, day, "10:00", 6, StatusPending)
	c := testBooking("c", ServiceConcreteSupply, otherDay, "10:00", 6, StatusPending)

	assert.True(t, BookingsOverlap(a, b))

	// Разные календарные дни не пересекаются даже при одинаковом времени
	assert.False(t, BookingsOverlap(b, c))
}

func TestFindConflicts(t *testing.T) {
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	existing := []*Booking{
		testBooking("x", ServiceEquipmentRental, day, "08:00", 8, StatusConfirmed),
		testBooking("y", ServiceInsurance, day, "06:00", 1, StatusPending),
		testBooking("z", ServiceWasteManagement, day, "09:00", 4, StatusCancelled),
		testBooking("w", ServiceConcreteSupply, day.AddDate(0, 0, 1), "08:00", 6, StatusConfirmed),
	}

	t.Run("overlapping candidate finds active same day bookings", func(t *testing.T) {
		conflicts := FindConflicts(day, "10:00", 4, existing)
		require.Len(t, conflicts, 1)
		assert.Equal(t, "x", conflicts[0].ID)
	})

	t.Run("cancelled bookings never conflict", func(t *testing.T) {
		conflicts := FindConflicts(day, "09:00", 1, existing[2:3])
		assert.Empty(t, conflicts)
	})

	t.Run("adjacent interval is free", func(t *testing.T) {
		conflicts := FindConflicts(day, "16:00", 2, existing)
		assert.Empty(t, conflicts)
	})

	t.Run("other day is free", func(t *testing.T) {
		conflicts := FindConflicts(day.AddDate(0, 0, 2), "08:00", 8, existing)
		assert.Empty(t, conflicts)
	})
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)
	b := time.Date(2025, 7, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}
