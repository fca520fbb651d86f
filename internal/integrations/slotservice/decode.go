package slotservice

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeWeeklyAvailability разбирает ответ Slot API о недельной доступности.
// Имена дней недели приходят динамическими ключами верхнего уровня рядом с
// Facility и SlotDurationMinutes, поэтому ответ читается токенами за один
// проход — так сохраняется порядок ключей исходного документа.
func DecodeWeeklyAvailability(data []byte) (*WeeklyAvailability, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var out WeeklyAvailability

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string object key, got %v", keyTok)
		}

		switch key {
		case "Facility":
			if err := dec.Decode(&out.Facility); err != nil {
				return nil, fmt.Errorf("failed to decode Facility: %w", err)
			}
		case "SlotDurationMinutes":
			if err := dec.Decode(&out.SlotDurationMinutes); err != nil {
				return nil, fmt.Errorf("failed to decode SlotDurationMinutes: %w", err)
			}
		default:
			// Любой другой ключ верхнего уровня — день недели
			var day DaySchedule
			if err := dec.Decode(&day); err != nil {
				return nil, fmt.Errorf("failed to decode day %q: %w", key, err)
			}
			out.Days = append(out.Days, DayEntry{Name: key, Schedule: day})
		}
	}

	return &out, nil
}
