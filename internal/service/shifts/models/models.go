package models

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

// Request модели

// ListShiftsRequest запрос списка броней на день
type ListShiftsRequest struct {
	CompanyCode  string
	Date         time.Time
	UnitBusiness *string // nil = все точки компании
}

// Response модели

// ShiftResponse ответ с данными брони
type ShiftResponse struct {
	ID           int64            `json:"id"`
	CompanyCode  string           `json:"companyCode"`
	Date         string           `json:"date"` // YYYY/MM/DD
	TimeStart    types.TimeString `json:"timeStart"`
	TimeEnd      types.TimeString `json:"timeEnd"`
	Status       string           `json:"status"`
	Client       string           `json:"client"`
	UnitBusiness string           `json:"unitBusiness"`
	TableNumber  *string          `json:"tableNumber,omitempty"`
	PeopleQty    int              `json:"peopleQty"`
	PhoneNumber  *string          `json:"phoneNumber,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Notificated  bool             `json:"notificated"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// FromDomainShift конвертирует доменную бронь в модель ответа
func FromDomainShift(s *domain.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:           s.ID,
		CompanyCode:  s.CompanyCode,
		Date:         s.Date.Format(domain.DateFormat),
		TimeStart:    s.TimeStart,
		TimeEnd:      s.TimeEnd,
		Status:       string(s.Status),
		Client:       s.Client,
		UnitBusiness: s.UnitBusiness,
		TableNumber:  s.TableNumber,
		PeopleQty:    s.PeopleQty,
		PhoneNumber:  s.PhoneNumber,
		Email:        s.Email,
		Description:  s.Description,
		Notificated:  s.Notificated,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainShifts конвертирует список доменных броней в модели ответа
func FromDomainShifts(shifts []*domain.Shift) []*ShiftResponse {
	result := make([]*ShiftResponse, len(shifts))
	for i, s := range shifts {
		result[i] = FromDomainShift(s)
	}
	return result
}
