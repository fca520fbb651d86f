package get_availability

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// AvailableSlot HTTP-модель свободного слота
type AvailableSlot struct {
	Start types.DateTime `json:"start"`
	End   types.DateTime `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) []AvailableSlot {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.Start,
			End:   slot.End,
		}
	}
	return slots
}

// requestedDateLayouts принимаемые форматы параметра date
var requestedDateLayouts = []string{
	time.RFC3339,
	types.DateTimeLayout,
	domain.DateFormat,
}

// ParseRequestedDate разбирает параметр date; false означает, что значение
// нечитаемо и вызывающий подставляет текущее время
func ParseRequestedDate(raw string) (time.Time, bool) {
	for _, layout := range requestedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
