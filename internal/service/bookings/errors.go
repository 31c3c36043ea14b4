package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при неизвестном значении статуса
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	// (в том числе при любой попытке изменить терминальный статус)
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
