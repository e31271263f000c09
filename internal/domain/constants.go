package domain

import "time"

// Time and date format constants
const (
	DateFormat       = "2006/01/02" // YYYY/MM/DD, as sent by the panel and the apps
	StatsMonthFormat = "01/2006"    // MM/YYYY, statistics query param
)

// Setting codes consumed by the availability engine and the validator
const (
	CodeDurationShift        = "durationShift"
	CodeDaysWeek             = "daysWeek"
	CodeSessionExpiresIn     = "sessionExpiresIn"
	CodeValidateShiftUpdates = "validateShiftUpdates"
	scheduleDayPrefix        = "scheduleDay"
)

// ScheduleDayCode returns the setting code holding the operating-hour
// ranges of the given weekday, e.g. "scheduleDayMonday". The English
// weekday name keeps the mapping locale-independent.
func ScheduleDayCode(weekday time.Weekday) string {
	return scheduleDayPrefix + weekday.String()
}

// Default configuration values
const (
	DefaultShiftDurationMinutes = 60
	DefaultSessionExpiresIn     = 3600
)

// DefaultCompanySettings настройки, создаваемые для каждой новой компании.
// Значения и описания совпадают с теми, что видит админ-панель.
func DefaultCompanySettings(companyCode string) []*Setting {
	return []*Setting{
		{
			Code:        CodeSessionExpiresIn,
			Scope:       ScopeServer,
			DataType:    DataTypeNumber,
			Name:        "Tiempo de expiracion de sesion",
			Value:       DefaultSessionExpiresIn,
			Description: "Tiempo de expiracion de la sesion de usuario (segundos). Por defecto en 3600 segundos (1 hora)",
			CompanyCode: companyCode,
		},
		{
			Code:        CodeDurationShift,
			Scope:       ScopeCompany,
			DataType:    DataTypeNumber,
			Name:        "Tiempo duracion de turno",
			Value:       DefaultShiftDurationMinutes,
			Description: "Tiempo de duracion de los turnos expresado en minutos",
			CompanyCode: companyCode,
		},
		{
			Code:        CodeDaysWeek,
			Scope:       ScopeCompany,
			DataType:    DataTypeString,
			Name:        "Dias de la semana laborables",
			Value:       "Lunes, Martes, Miercoles, Jueves, Viernes",
			Description: "Dias de la semana aplicables a turnos, se expresa nombre del dia seguido de coma",
			CompanyCode: companyCode,
		},
		{
			Code:        CodeValidateShiftUpdates,
			Scope:       ScopeCompany,
			DataType:    DataTypeBoolean,
			Name:        "Validar capacidad al actualizar turnos",
			Value:       false,
			Description: "Si esta activo, la edicion de un turno existente vuelve a validar la capacidad del horario",
			CompanyCode: companyCode,
		},
		{
			Code:        ScheduleDayCode(time.Monday),
			Scope:       ScopeCompany,
			DataType:    DataTypeString,
			Name:        "Horarios dia Lunes",
			Value:       "09:00-18:00",
			Description: "Horarios para dia Lunes. Ej. 14:00-18:00, 20:00-23:00",
			CompanyCode: companyCode,
		},
		{
			Code:        ScheduleDayCode(time.Tuesday),
			Scope:       ScopeCompany,
			DataType:    DataTypeString,
			Name:        "Horarios dia Martes",
			Value:       "18:00-23:00",
			Description: "Horarios para dia Martes. Ej. 14:00-18:00, 20:00-23:00",
			CompanyCode: companyCode,
		},
		{
			Code:        ScheduleDayCode(time.Wednesday),
			Scope:       ScopeCompany,
			DataType:    DataTypeString,
			Name:        "Horarios dia Miercoles",
			Value:       "09:00-18:00",
			Description: "Horarios para dia Miercoles. Ej. 14:00-18:00, 20:00-23:00",
			CompanyCode: companyCode,
		},
		{
			Code:        ScheduleDayCode(time.Thursday),
			Scope:       ScopeCompany,
			DataType:    DataTypeString,
			Name:        "Horarios dia Jueves",
			Value:       "18:00-23:00",
			Description: "Horarios para dia Jueves. Ej. 14:00-18:00, 20:00-23:00",
			CompanyCode: companyCode,
		},
		{
			Code:        ScheduleDayCode(time.Friday),
			Scope:       ScopeCompany,
			DataType:    DataTypeString,
			Name:        "Horarios dia Viernes",
			Value:       "09:00-18:00",
			Description: "Horarios para dia Viernes. Ej. 14:00-18:00, 20:00-23:00",
			CompanyCode: companyCode,
		},
		{
			Code:        ScheduleDayCode(time.Saturday),
			Scope:       ScopeCompany,
			DataType:    DataTypeString,
			Name:        "Horarios dia Sabado",
			Value:       "18:00-23:00",
			Description: "Horarios para dia Sabados. Ej. 14:00-18:00, 20:00-23:00",
			CompanyCode: companyCode,
		},
		{
			Code:        ScheduleDayCode(time.Sunday),
			Scope:       ScopeCompany,
			DataType:    DataTypeString,
			Name:        "Horarios dia Domingo",
			Value:       "09:00-12:00",
			Description: "Horarios para dia Domingos. Ej. 14:00-18:00, 20:00-23:00",
			CompanyCode: companyCode,
		},
	}
}
