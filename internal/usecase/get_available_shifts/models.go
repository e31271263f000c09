package get_available_shifts

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

// Request модель запроса доступности на день
type Request struct {
	CompanyCode  string    // Код компании
	UnitBusiness string    // Код точки (филиала)
	Date         time.Time // Дата без времени
}

// Response модель ответа со слотами дня
type Response struct {
	Date  time.Time // Дата, на которую считались слоты
	Slots []Slot    // Слоты в порядке генерации по расписанию
}

// Slot временной слот с остатком мест
type Slot struct {
	InitialTime types.TimeString `json:"initialTime"` // Начало слота, например "9:00"
	Availables  int              `json:"availables"`  // Свободные места
}
