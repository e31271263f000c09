package models

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// Request модели

// CreateCompanyRequest запрос на регистрацию компании
type CreateCompanyRequest struct {
	Code          string  `json:"code"`
	CompanyName   string  `json:"companyName"`
	Address       *string `json:"address,omitempty"`
	Email         *string `json:"email,omitempty"`
	CompanyNumber string  `json:"companyNumber"`
	Type          string  `json:"type"`
	Cellphone     *string `json:"cellphone,omitempty"`
	Instagram     *string `json:"instagram,omitempty"`
	Facebook      *string `json:"facebook,omitempty"`
	Twitter       *string `json:"twitter,omitempty"`
	Alias         *string `json:"alias,omitempty"`
	Cuit          *string `json:"cuit,omitempty"`
	AccountName   *string `json:"accountName,omitempty"`
}

// UpdateCompanyRequest запрос на обновление компании
type UpdateCompanyRequest struct {
	Code          string  `json:"-"`
	CompanyName   string  `json:"companyName"`
	Address       *string `json:"address,omitempty"`
	Email         *string `json:"email,omitempty"`
	CompanyNumber string  `json:"companyNumber"`
	Type          string  `json:"type"`
	Cellphone     *string `json:"cellphone,omitempty"`
	Active        bool    `json:"active"`
	Instagram     *string `json:"instagram,omitempty"`
	Facebook      *string `json:"facebook,omitempty"`
	Twitter       *string `json:"twitter,omitempty"`
	Alias         *string `json:"alias,omitempty"`
	Cuit          *string `json:"cuit,omitempty"`
	AccountName   *string `json:"accountName,omitempty"`
}

// Response модели

// CompanyResponse ответ с данными компании
type CompanyResponse struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	CompanyName   string    `json:"companyName"`
	Address       *string   `json:"address,omitempty"`
	Email         *string   `json:"email,omitempty"`
	CompanyNumber string    `json:"companyNumber"`
	Type          string    `json:"type"`
	Cellphone     *string   `json:"cellphone,omitempty"`
	Active        bool      `json:"active"`
	Instagram     *string   `json:"instagram,omitempty"`
	Facebook      *string   `json:"facebook,omitempty"`
	Twitter       *string   `json:"twitter,omitempty"`
	Alias         *string   `json:"alias,omitempty"`
	Cuit          *string   `json:"cuit,omitempty"`
	AccountName   *string   `json:"accountName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromDomainCompany конвертирует доменную компанию в модель ответа
func FromDomainCompany(c *domain.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:            c.ID,
		Code:          c.Code,
		CompanyName:   c.CompanyName,
		Address:       c.Address,
		Email:         c.Email,
		CompanyNumber: c.CompanyNumber,
		Type:          c.Type,
		Cellphone:     c.Cellphone,
		Active:        c.Active,
		Instagram:     c.Instagram,
		Facebook:      c.Facebook,
		Twitter:       c.Twitter,
		Alias:         c.Alias,
		Cuit:          c.Cuit,
		AccountName:   c.AccountName,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
