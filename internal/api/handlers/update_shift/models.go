package update_shift

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	updateShift "github.com/m04kA/SMC-ShiftService/internal/usecase/update_shift"
	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

// UpdateShiftRequest HTTP модель запроса на обновление брони
type UpdateShiftRequest struct {
	ID           int64            `json:"id"`
	Date         string           `json:"date"` // YYYY/MM/DD
	TimeStart    types.TimeString `json:"timeStart"`
	Status       string           `json:"status"`
	Client       string           `json:"client"`
	UnitBusiness string           `json:"unitBusiness"`
	TableNumber  *string          `json:"tableNumber,omitempty"`
	PeopleQty    int              `json:"peopleQty"`
	PhoneNumber  *string          `json:"phoneNumber,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Notificated  bool             `json:"notificated"`
}

// ToUseCaseRequest конвертирует HTTP модель в запрос use case
func (r *UpdateShiftRequest) ToUseCaseRequest(companyCode string) (*updateShift.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &updateShift.Request{
		ID:           r.ID,
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
		Notificated:  r.Notificated,
	}, nil
}
