package create_booking

import "errors"

var (
	// ErrBookingConflict возвращается, когда кандидат пересекается по времени
	// с существующим бронированием проекта на ту же дату
	ErrBookingConflict = errors.New("create_booking: booking conflicts with existing bookings")

	// ErrProviderNotFound возвращается, когда поставщик услуг не найден
	ErrProviderNotFound = errors.New("create_booking: provider not found")

	// ErrInvalidServiceType возвращается при неизвестном типе услуги
	ErrInvalidServiceType = errors.New("create_booking: invalid service type")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
