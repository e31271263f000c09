package domain

import "time"

// Company represents a registered business (a café/restaurant brand).
// A company may operate several unit businesses (physical branches).
type Company struct {
	ID            int64
	Code          string
	CompanyName   string
	Address       *string
	Email         *string
	CompanyNumber string
	Type          string
	Cellphone     *string
	Active        bool
	Instagram     *string
	Facebook      *string
	Twitter       *string
	Alias         *string
	Cuit          *string
	AccountName   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
