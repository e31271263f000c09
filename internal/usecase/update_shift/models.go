package update_shift

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

// Request модель запроса на обновление брони.
// Обновление полное: все поля брони приходят в запросе, TimeEnd
// пересчитывается из TimeStart и текущей длительности турно.
type Request struct {
	ID           int64
	CompanyCode  string
	Date         time.Time
	TimeStart    types.TimeString
	Status       domain.ShiftStatus
	Client       string
	UnitBusiness string
	TableNumber  *string
	PeopleQty    int
	PhoneNumber  *string
	Email        *string
	Description  *string
	Notificated  bool
}

// Response модель ответа с обновлённой бронью
type Response struct {
	Shift *domain.Shift
}
