package resolve_conflicts

import (
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

// ResolutionType тип рекомендуемого разрешения конфликта
type ResolutionType string

// Единственный тип разрешения в текущем дизайне - перенос второго бронирования
const ResolutionReschedule ResolutionType = "reschedule"

// AlternativeSlot альтернативная дата/время для переносимого бронирования
type AlternativeSlot struct {
	Date          time.Time        `json:"date"`
	Time          types.TimeString `json:"time"`
	Justification string           `json:"justification"` // Арабское пояснение
}

// ConflictResolution обнаруженное пересечение двух бронирований одного дня
// Вычисляемый эфемерный артефакт: никогда не сохраняется
type ConflictResolution struct {
	First        *domain.Booking   `json:"first"`
	Second       *domain.Booking   `json:"second"`
	Type         ResolutionType    `json:"type"`
	Alternatives []AlternativeSlot `json:"alternatives"` // Варианты переноса второго бронирования
	Impact       string            `json:"impact"`       // Человекочитаемая сводка последствий
}

// Response список конфликтов проекта с предложенными разрешениями
type Response struct {
	ProjectID   string               `json:"projectId"`
	Resolutions []ConflictResolution `json:"resolutions"`
}
