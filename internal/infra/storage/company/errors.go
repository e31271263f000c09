package company

import "errors"

var (
	// ErrCompanyNotFound компания не найдена
	ErrCompanyNotFound = errors.New("company.repository: company not found")

	// ErrCompanyExists компания с таким кодом уже существует
	ErrCompanyExists = errors.New("company.repository: company code already exists")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("company.repository: failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("company.repository: failed to execute query")

	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("company.repository: failed to scan row")
)
