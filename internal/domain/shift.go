package domain

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

// ShiftStatus represents the status of a reservation
type ShiftStatus string

const (
	StatusToConfirm ShiftStatus = "toConfirm"
	StatusConfirmed ShiftStatus = "confirmed"
	StatusPaid      ShiftStatus = "paid"
	StatusCancelled ShiftStatus = "cancelled"
	StatusCompleted ShiftStatus = "completed"
	StatusDebt      ShiftStatus = "debt"
)

// Valid returns true if the status is one of the known values
func (s ShiftStatus) Valid() bool {
	switch s {
	case StatusToConfirm, StatusConfirmed, StatusPaid, StatusCancelled, StatusCompleted, StatusDebt:
		return true
	}
	return false
}

// Shift represents a single table reservation occupying one time slot
type Shift struct {
	ID           int64
	CompanyCode  string
	Date         time.Time
	TimeStart    types.TimeString
	TimeEnd      types.TimeString // derived: TimeStart + durationShift
	Status       ShiftStatus
	Client       string
	UnitBusiness string
	TableNumber  *string
	PeopleQty    int
	PhoneNumber  *string
	Email        *string
	Description  *string
	Notificated  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the reservation has been cancelled
func (s *Shift) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// OccupiesSlot returns true if the reservation consumes seating capacity
// in availability results (every status except cancelled does)
func (s *Shift) OccupiesSlot() bool {
	return s.Status != StatusCancelled
}

// ShiftsFilter фильтр выборки бронирований
type ShiftsFilter struct {
	CompanyCode      string            // Обязательный параметр
	UnitBusiness     *string           // Фильтр по точке (опционально)
	Date             *time.Time        // Конкретный день (опционально)
	StartDate        *time.Time        // Начало периода, включительно (опционально)
	EndDate          *time.Time        // Конец периода, включительно (опционально)
	TimeStart        *types.TimeString // Конкретный слот (опционально)
	ExcludeCancelled bool              // Исключать ли отменённые брони
}
