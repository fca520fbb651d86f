package take_slot

import "errors"

var (
	// ErrUpstream возвращается, когда запрос к Slot API не удался на сетевом уровне.
	// Путь записи не деградирует: отказ всегда сообщается вызывающему.
	ErrUpstream = errors.New("take_slot: upstream request failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("take_slot: internal error")
)
