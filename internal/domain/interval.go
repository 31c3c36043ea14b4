package domain

import (
	"time"

	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

const minutesPerDay = 24 * 60

// Interval полуоткрытый интервал [Start, End) в минутах от начала суток
// Конец интервала обрезается по границе суток: проверка конфликтов
// выполняется строго в рамках одного календарного дня
type Interval struct {
	Start int
	End   int
}

// NewInterval строит интервал из времени начала и длительности в часах
// Невалидное время начала дает пустой интервал, который ни с чем не пересекается
func NewInterval(start types.TimeString, durationHours int) Interval {
	startMin, err := start.Minutes()
	if err != nil {
		return Interval{}
	}
	endMin := startMin + durationHours*60
	if endMin > minutesPerDay {
		endMin = minutesPerDay
	}
	return Interval{Start: startMin, End: endMin}
}

// IsEmpty возвращает true для интервала нулевой длины
func (i Interval) IsEmpty() bool {
	return i.End <= i.Start
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов:
// [a1,a2) и [b1,b2) пересекаются тогда и только тогда, когда a1 < b2 && b1 < a2
// Граничные случаи (конец одного совпадает с началом другого) пересечением не считаются
func (i Interval) Overlaps(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}
	return i.Start < other.End && other.Start < i.End
}

// BookingsOverlap проверяет временное пересечение двух бронирований
// Бронирования на разные календарные даты никогда не пересекаются
func BookingsOverlap(a, b *Booking) bool {
	if !SameDay(a.ScheduledDate, b.ScheduledDate) {
		return false
	}
	return a.Interval().Overlaps(b.Interval())
}

// FindConflicts возвращает все существующие бронирования, пересекающиеся
// с кандидатом: та же дата, статус не cancelled, интервалы пересекаются
// Кандидат задается датой, временем начала и длительностью
func FindConflicts(date time.Time, start types.TimeString, durationHours int, existing []*Booking) []*Booking {
	candidate := NewInterval(start, durationHours)

	conflicts := make([]*Booking, 0)
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		if !SameDay(date, b.ScheduledDate) {
			continue
		}
		if candidate.Overlaps(b.Interval()) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет компонент времени у даты
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
