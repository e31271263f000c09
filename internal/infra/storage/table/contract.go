package table

import (
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов (может быть *sql.DB или *sql.Tx)
type DBExecutor = dbmetrics.DBExecutor

// TxExecutor интерфейс для транзакций
type TxExecutor = dbmetrics.TxExecutor
