package types

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout формат даты-времени Slot API: без зонного суффикса.
// Значения без указания зоны обе стороны единообразно трактуют как UTC.
const DateTimeLayout = "2006-01-02T15:04:05"

// DateTime временная метка в проводном формате Slot API
type DateTime struct {
	time.Time
}

// NewDateTime создает DateTime, нормализуя значение к UTC
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC()}
}

// ParseDateTime разбирает строку в формате Slot API; для обратной совместимости
// принимается и RFC 3339 с явной зоной
func ParseDateTime(value string) (DateTime, error) {
	if t, err := time.Parse(DateTimeLayout, value); err == nil {
		return DateTime{Time: t}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return DateTime{Time: t.UTC()}, nil
	}
	return DateTime{}, fmt.Errorf("invalid date-time string %q, expected %s", value, DateTimeLayout)
}

// Equal сравнивает метки с точностью до момента времени
func (d DateTime) Equal(other DateTime) bool {
	return d.Time.Equal(other.Time)
}

// String возвращает значение в проводном формате
func (d DateTime) String() string {
	return d.UTC().Format(DateTimeLayout)
}

// MarshalJSON сериализует значение без зонного суффикса
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON разбирает значение из проводного формата
func (d *DateTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return nil
	}
	parsed, err := ParseDateTime(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
