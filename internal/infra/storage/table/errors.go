package table

import "errors"

var (
	// ErrTableNotFound стол не найден
	ErrTableNotFound = errors.New("table.repository: table not found")

	// ErrTableExists стол с таким номером уже есть в точке
	ErrTableExists = errors.New("table.repository: table already exists")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("table.repository: failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("table.repository: failed to execute query")

	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("table.repository: failed to scan row")
)
