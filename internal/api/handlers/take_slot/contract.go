package take_slot

import (
	"context"

	takeSlot "github.com/m04kA/SMC-SlotService/internal/usecase/take_slot"
)

type TakeSlotUseCase interface {
	Execute(ctx context.Context, req *takeSlot.Request) (*takeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
