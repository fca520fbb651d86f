package get_available_slots

import "errors"

var (
	// ErrInvalidSlotDuration возвращается, когда длительность слота из Slot API
	// не положительная. Без этой проверки цикл генерации слотов не завершился бы.
	ErrInvalidSlotDuration = errors.New("get_available_slots: slot duration must be a positive number of minutes")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
