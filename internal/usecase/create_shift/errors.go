package create_shift

import "errors"

var (
	// ErrShiftNotAvailable возвращается, когда в слоте нет свободных мест
	ErrShiftNotAvailable = errors.New("shift not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
