package shifts

import "errors"

var (
	// ErrShiftNotFound возвращается, когда бронь не найдена
	ErrShiftNotFound = errors.New("shift not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
