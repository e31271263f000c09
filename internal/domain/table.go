package domain

import "time"

// Table represents a physical table of a unit business
type Table struct {
	ID           int64
	Number       int
	Capacity     int
	Description  *string
	UnitBusiness string
	CompanyCode  string
	Active       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalCapacity returns the summed seating capacity of the given tables.
// Callers are expected to pass only active tables.
func TotalCapacity(tables []*Table) int {
	total := 0
	for _, t := range tables {
		total += t.Capacity
	}
	return total
}
