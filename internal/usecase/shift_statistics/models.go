package shift_statistics

import "time"

// Request модель запроса месячной статистики
type Request struct {
	CompanyCode string
	Month       time.Time // Любая дата внутри месяца, границы считаются в UTC
}

// Response месячная сводка по броням
type Response struct {
	Month     time.Time `json:"-"`
	ToConfirm int       `json:"toConfirm"` // Брони в ожидании подтверждения
	Confirmed int       `json:"confirmed"` // Подтверждённые
	Cancelled int       `json:"cancelled"` // Отменённые
	Paid      int       `json:"paid"`      // Оплаченные
	Total     int       `json:"total"`     // Все брони месяца
	People    int       `json:"people"`    // Суммарное количество гостей
	Clients   int       `json:"clients"`   // Уникальные клиенты
}
