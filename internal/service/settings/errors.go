package settings

import "errors"

var (
	// ErrSettingNotFound возвращается, когда настройка не найдена
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidValue возвращается, когда значение не соответствует типу настройки
	ErrInvalidValue = errors.New("invalid setting value")

	// ErrScheduleNotConfigured возвращается, когда расписание на день недели не задано
	ErrScheduleNotConfigured = errors.New("schedule not configured for this day")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
