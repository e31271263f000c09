package create_shift

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

// Request модель запроса на создание брони.
// TimeEnd не принимается: он всегда вычисляется как TimeStart плюс
// настроенная длительность турно.
type Request struct {
	CompanyCode  string
	Date         time.Time
	TimeStart    types.TimeString
	Status       domain.ShiftStatus // пустой статус = toConfirm
	Client       string
	UnitBusiness string
	TableNumber  *string
	PeopleQty    int
	PhoneNumber  *string
	Email        *string
	Description  *string
}

// Response модель ответа с созданной бронью
type Response struct {
	Shift *domain.Shift
}
