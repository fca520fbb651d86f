package take_slot

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/integrations/slotservice"
)

// SlotServiceClient интерфейс клиента Slot API
type SlotServiceClient interface {
	ReserveSlot(ctx context.Context, payload *slotservice.ReservationPayload) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
