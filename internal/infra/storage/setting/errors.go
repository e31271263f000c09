package setting

import "errors"

var (
	// ErrSettingNotFound настройка не найдена
	ErrSettingNotFound = errors.New("setting.repository: setting not found")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("setting.repository: failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("setting.repository: failed to execute query")

	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("setting.repository: failed to scan row")

	// ErrEncodeValue ошибка сериализации значения настройки
	ErrEncodeValue = errors.New("setting.repository: failed to encode value")
)
