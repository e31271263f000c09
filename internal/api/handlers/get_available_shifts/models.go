package get_available_shifts

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	getAvailableShifts "github.com/m04kA/SMC-ShiftService/internal/usecase/get_available_shifts"
)

// AvailableShift HTTP модель слота с остатком мест
type AvailableShift struct {
	InitialTime string `json:"initialTime"`
	Availables  int    `json:"availables"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableShifts.Response) []AvailableShift {
	slots := make([]AvailableShift, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableShift{
			InitialTime: slot.InitialTime.String(),
			Availables:  slot.Availables,
		}
	}
	return slots
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(companyCode, unitBusiness, dateStr string) (*getAvailableShifts.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableShifts.Request{
		CompanyCode:  companyCode,
		UnitBusiness: unitBusiness,
		Date:         date,
	}, nil
}
