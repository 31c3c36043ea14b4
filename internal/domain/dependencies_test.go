package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDependencies(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
	}

	bookings := []*Booking{
		testBooking("design", ServiceDesignOffice, day(1), "10:00", 2, StatusCompleted),
		testBooking("equipment", ServiceEquipmentRental, day(5), "07:00", 8, StatusConfirmed),
		testBooking("concrete", ServiceConcreteSupply, day(5), "06:00", 6, StatusPending),
		testBooking("waste", ServiceWasteManagement, day(6), "14:00", 4, StatusPending),
	}

	deps := CalculateDependencies(bookings)
	require.Len(t, deps, len(bookings))

	byID := make(map[string]BookingDependencies)
	for _, d := range deps {
		byID[d.BookingID] = d
	}

	t.Run("design and equipment have no dependencies", func(t *testing.T) {
		assert.Empty(t, byID["design"].DependsOn)
		assert.Empty(t, byID["equipment"].DependsOn)
	})

	t.Run("concrete depends on equipment on or before its date", func(t *testing.T) {
		assert.Equal(t, []string{"equipment"}, byID["concrete"].DependsOn)
	})

	t.Run("waste depends on strictly earlier equipment and concrete", func(t *testing.T) {
		assert.Equal(t, []string{"equipment", "concrete"}, byID["waste"].DependsOn)
	})

	t.Run("blocks edges stay empty", func(t *testing.T) {
		for _, d := range deps {
			assert.Empty(t, d.Blocks)
		}
	})
}

func TestCalculateDependencies_SameDayRules(t *testing.T) {
	day := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	bookings := []*Booking{
		testBooking("equipment", ServiceEquipmentRental, day, "07:00", 8, StatusConfirmed),
		testBooking("concrete", ServiceConcreteSupply, day, "06:00", 6, StatusPending),
		testBooking("waste", ServiceWasteManagement, day, "14:00", 4, StatusPending),
	}

	deps := CalculateDependencies(bookings)
	byID := make(map[string]BookingDependencies)
	for _, d := range deps {
		byID[d.BookingID] = d
	}

	// Тот же день допустим для concrete, но не для waste (строго раньше)
	assert.Equal(t, []string{"equipment"}, byID["concrete"].DependsOn)
	assert.Empty(t, byID["waste"].DependsOn)
}

func TestCalculateDependencies_Deterministic(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
	}

	bookings := []*Booking{
		testBooking("eq1", ServiceEquipmentRental, day(1), "07:00", 8, StatusConfirmed),
		testBooking("eq2", ServiceEquipmentRental, day(2), "07:00", 8, StatusConfirmed),
		testBooking("waste", ServiceWasteManagement, day(10), "14:00", 4, StatusPending),
	}

	first := CalculateDependencies(bookings)
	second := CalculateDependencies(bookings)
	assert.Equal(t, first, second)

	// Порядок ребер повторяет порядок входного списка
	assert.Equal(t, []string{"eq1", "eq2"}, first[2].DependsOn)
}

func TestCalculateDependencies_Empty(t *testing.T) {
	deps := CalculateDependencies(nil)
	assert.Empty(t, deps)
}
