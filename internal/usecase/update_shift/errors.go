package update_shift

import "errors"

var (
	// ErrShiftNotFound возвращается, когда бронь не найдена
	ErrShiftNotFound = errors.New("shift not found")

	// ErrShiftNotAvailable возвращается, когда в целевом слоте нет мест
	ErrShiftNotAvailable = errors.New("shift not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
