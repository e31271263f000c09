package models

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// Request модели

// UpdateSettingRequest запрос на обновление значения настройки
type UpdateSettingRequest struct {
	CompanyCode string      `json:"-"`
	Code        string      `json:"code"`
	Value       interface{} `json:"value"`
}

// Response модели

// SettingResponse ответ с данными настройки
type SettingResponse struct {
	ID          int64       `json:"id"`
	Code        string      `json:"code"`
	Scope       string      `json:"scope"`
	DataType    string      `json:"dataType"`
	Name        string      `json:"name"`
	Value       interface{} `json:"value"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// FromDomainSetting конвертирует доменную настройку в модель ответа
func FromDomainSetting(s *domain.Setting) *SettingResponse {
	return &SettingResponse{
		ID:          s.ID,
		Code:        s.Code,
		Scope:       string(s.Scope),
		DataType:    string(s.DataType),
		Name:        s.Name,
		Value:       s.Value,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainSettings конвертирует список доменных настроек в модели ответа
func FromDomainSettings(settings []*domain.Setting) []*SettingResponse {
	result := make([]*SettingResponse, len(settings))
	for i, s := range settings {
		result[i] = FromDomainSetting(s)
	}
	return result
}
