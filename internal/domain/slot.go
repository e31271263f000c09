package domain

import "github.com/m04kA/SMC-ShiftService/pkg/types"

// AvailableSlot represents one bookable time slot of a day and the
// seating capacity still available at it
type AvailableSlot struct {
	InitialTime types.TimeString
	Availables  int
}

// IsFull returns true if the slot has no seats left
func (s *AvailableSlot) IsFull() bool {
	return s.Availables <= 0
}
