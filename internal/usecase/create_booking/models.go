package create_booking

import (
	"encoding/json"
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	"github.com/mabani-platform/MBN-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ProjectID     string             // ID проекта
	ServiceType   domain.ServiceType // Тип услуги
	ProviderID    string             // ID поставщика услуг
	Details       json.RawMessage    // Произвольные детали услуги (опционально)
	Date          time.Time          // Дата бронирования (без времени)
	StartTime     types.TimeString   // Время начала (например, "08:00")
	DurationHours *int               // Длительность в часах; nil = дефолт типа услуги
	Location      string             // Адрес/локация проекта
	Instructions  *string            // Инструкции поставщику (опционально)
	EstimatedCost float64            // Оценочная стоимость
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
