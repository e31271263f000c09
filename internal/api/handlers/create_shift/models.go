package create_shift

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	createShift "github.com/m04kA/SMC-ShiftService/internal/usecase/create_shift"
	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

// CreateShiftRequest HTTP модель запроса на создание брони.
// timeEnd не принимается: сервер вычисляет его из длительности турно.
type CreateShiftRequest struct {
	Date         string           `json:"date"` // YYYY/MM/DD
	TimeStart    types.TimeString `json:"timeStart"`
	Status       string           `json:"status,omitempty"`
	Client       string           `json:"client"`
	UnitBusiness string           `json:"unitBusiness"`
	TableNumber  *string          `json:"tableNumber,omitempty"`
	PeopleQty    int              `json:"peopleQty"`
	PhoneNumber  *string          `json:"phoneNumber,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Description  *string          `json:"description,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP модель в запрос use case
func (r *CreateShiftRequest) ToUseCaseRequest(companyCode string) (*createShift.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createShift.Request{
		CompanyCode:  companyCode,
		Date:         date,
		TimeStart:    r.TimeStart,
		Status:       domain.ShiftStatus(r.Status),
		Client:       r.Client,
		UnitBusiness: r.UnitBusiness,
		TableNumber:  r.TableNumber,
		PeopleQty:    r.PeopleQty,
		PhoneNumber:  r.PhoneNumber,
		Email:        r.Email,
		Description:  r.Description,
	}, nil
}
