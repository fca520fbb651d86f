package slotservice

import "errors"

var (
	// ErrNotConfigured возвращается, когда base URL или учётные данные Slot API не заданы.
	// Это ошибка конфигурации, а не недоступности upstream — она не деградирует в пустой результат.
	ErrNotConfigured = errors.New("slotservice client: credentials are not configured")

	// ErrUnavailable возвращается при сетевой ошибке или не-2xx ответе Slot API
	ErrUnavailable = errors.New("slotservice client: upstream unavailable")

	// ErrInvalidResponse возвращается, когда тело ответа не разбирается в ожидаемую схему
	ErrInvalidResponse = errors.New("slotservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("slotservice client: internal error")
)
