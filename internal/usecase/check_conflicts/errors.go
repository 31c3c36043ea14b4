package check_conflicts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_conflicts: invalid input data")

	// ErrInvalidServiceType возвращается при неизвестном типе услуги
	ErrInvalidServiceType = errors.New("check_conflicts: invalid service type")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_conflicts: internal error")
)
