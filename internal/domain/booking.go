package domain

import (
	"encoding/json"
	"time"

	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// statusTransitions таблица допустимых переходов статусов
// Жизненный цикл: pending -> confirmed -> in_progress -> completed,
// отмена возможна из любого нетерминального статуса
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValidStatus проверяет, что значение является известным статусом
func IsValidStatus(s BookingStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition проверяет допустимость перехода from -> to по таблице переходов
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus возвращает true для терминальных статусов (completed, cancelled)
func IsTerminalStatus(s BookingStatus) bool {
	return IsValidStatus(s) && len(statusTransitions[s]) == 0
}

// Booking represents a scheduled engagement of a service provider for a project
type Booking struct {
	ID           string // UUID, генерируется при создании
	ProjectID    string
	ServiceType  ServiceType
	ProviderID   string
	ProviderName string

	// Произвольные детали услуги (объём бетона, тип контейнера и т.п.)
	Details json.RawMessage

	ScheduledDate time.Time // Календарный день без времени
	ScheduledTime types.TimeString
	DurationHours int

	Location     string
	Instructions *string

	EstimatedCost float64
	ActualCost    *float64 // Заполняется при завершении

	Status BookingStatus

	CompletionNotes *string
	Rating          *int
	Review          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time interval
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if no further status transitions are allowed
func (b *Booking) IsTerminal() bool {
	return IsTerminalStatus(b.Status)
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return CanTransition(b.Status, StatusCancelled)
}

// Interval возвращает занимаемый бронированием интервал внутри его дня
func (b *Booking) Interval() Interval {
	return NewInterval(b.ScheduledTime, b.DurationHours)
}

// StartsAt возвращает момент начала бронирования (дата + время)
func (b *Booking) StartsAt() (time.Time, error) {
	return b.ScheduledTime.OnDate(b.ScheduledDate)
}

// EndsAt возвращает момент окончания бронирования (начало + длительность)
func (b *Booking) EndsAt() (time.Time, error) {
	start, err := b.StartsAt()
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(b.DurationHours) * time.Hour), nil
}
