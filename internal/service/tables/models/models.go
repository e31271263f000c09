package models

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// Request модели

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	CompanyCode  string  `json:"-"`
	Number       int     `json:"number"`
	Capacity     int     `json:"capacity"`
	Description  *string `json:"description,omitempty"`
	UnitBusiness string  `json:"unitBusiness"`
	Active       *bool   `json:"active,omitempty"` // nil = true
}

// UpdateTableRequest запрос на обновление стола
type UpdateTableRequest struct {
	CompanyCode  string  `json:"-"`
	ID           int64   `json:"id"`
	Number       int     `json:"number"`
	Capacity     int     `json:"capacity"`
	Description  *string `json:"description,omitempty"`
	UnitBusiness string  `json:"unitBusiness"`
	Active       bool    `json:"active"`
}

// Response модели

// TableResponse ответ с данными стола
type TableResponse struct {
	ID           int64     `json:"id"`
	Number       int       `json:"number"`
	Capacity     int       `json:"capacity"`
	Description  *string   `json:"description,omitempty"`
	UnitBusiness string    `json:"unitBusiness"`
	CompanyCode  string    `json:"companyCode"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromDomainTable конвертирует доменный стол в модель ответа
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:           t.ID,
		Number:       t.Number,
		Capacity:     t.Capacity,
		Description:  t.Description,
		UnitBusiness: t.UnitBusiness,
		CompanyCode:  t.CompanyCode,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// FromDomainTables конвертирует список доменных столов в модели ответа
func FromDomainTables(tables []*domain.Table) []*TableResponse {
	result := make([]*TableResponse, len(tables))
	for i, t := range tables {
		result[i] = FromDomainTable(t)
	}
	return result
}
