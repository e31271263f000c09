package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString время суток, внутри хранится как минуты с начала дня.
// Парсится из "H:MM" или "HH:MM", форматируется как "H:MM" (час без
// ведущего нуля, минуты всегда две цифры).
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute(), valid: true}
}

// NewTimeStringFromString парсит строку вида "9:00" или "09:00"
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeString{}, fmt.Errorf("invalid time string format: %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeString{}, fmt.Errorf("invalid time string format: %q", s)
	}

	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeString{}, fmt.Errorf("invalid time string format: %q", s)
	}

	if hours < 0 || mins < 0 || mins > 59 {
		return TimeString{}, fmt.Errorf("time out of range: %q", s)
	}

	return TimeString{minutes: hours*60 + mins, valid: true}, nil
}

// FromMinutes создает TimeString из количества минут с начала дня
func FromMinutes(m int) TimeString {
	return TimeString{minutes: m, valid: true}
}

// Minutes возвращает количество минут с начала дня
func (t TimeString) Minutes() int {
	return t.minutes
}

// AddMinutes возвращает время, смещённое на m минут вперёд.
// Результат может выходить за пределы суток (например "24:30"),
// переноса на следующий день нет, как и в расчёте времени окончания смены.
func (t TimeString) AddMinutes(m int) TimeString {
	return TimeString{minutes: t.minutes + m, valid: t.valid}
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal возвращает true при поминутном совпадении
func (t TimeString) Equal(other TimeString) bool {
	return t.minutes == other.minutes
}

// IsZero возвращает true для незаполненного значения
func (t TimeString) IsZero() bool {
	return !t.valid
}

// Validate проверяет, что значение заполнено
func (t TimeString) Validate() error {
	if !t.valid {
		return fmt.Errorf("time string is empty")
	}
	return nil
}

// String форматирует время как "H:MM" (час без ведущего нуля)
func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%d:%02d", t.minutes/60, t.minutes%60)
}

// MarshalJSON реализует json.Marshaler
func (t TimeString) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte(`""`), nil
	}
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON реализует json.Unmarshaler
func (t *TimeString) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid time string: %s", data)
	}
	if s == "" {
		*t = TimeString{}
		return nil
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer, в БД время хранится каноничной строкой
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = TimeString{}
		return nil
	}

	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
