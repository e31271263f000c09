package get_available_shifts

import "errors"

var (
	// ErrScheduleNotConfigured возвращается, когда расписание на запрошенный день не задано
	ErrScheduleNotConfigured = errors.New("schedule not configured for this day")

	// ErrInvalidSchedule возвращается при некорректном формате расписания
	ErrInvalidSchedule = errors.New("invalid schedule format")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
