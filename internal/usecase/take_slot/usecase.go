package take_slot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SlotService/internal/integrations/slotservice"
)

// UseCase use case бронирования слота
type UseCase struct {
	client SlotServiceClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client SlotServiceClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute валидирует запрос и передает бронирование в Slot API.
// Локальный отказ валидации не доходит до upstream и возвращается как
// Response{Accepted: false} с причиной; сетевые ошибки пробрасываются наверх.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TakeSlot: facility=%s, start=%s, end=%s",
		req.FacilityID, req.Start, req.End)

	if reason := validateRequest(req); reason != "" {
		uc.logger.Warn("TakeSlot: validation failed: %s", reason)
		return &Response{Accepted: false, Message: reason}, nil
	}

	status, err := uc.client.ReserveSlot(ctx, toReservationPayload(req))
	if err != nil {
		if errors.Is(err, slotservice.ErrNotConfigured) {
			return nil, err
		}
		uc.logger.Error("TakeSlot: upstream request failed: facility=%s, error=%v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		message := "Slot reservation API returned " + statusName(status)
		uc.logger.Error("TakeSlot: %s", message)
		return &Response{Accepted: false, Message: message}, nil
	}

	uc.logger.Info("TakeSlot: slot reserved successfully: facility=%s, start=%s", req.FacilityID, req.Start)
	return &Response{Accepted: true, Message: msgReserved}, nil
}

// statusName имя HTTP-статуса без пробелов, как его печатает Slot API
// (400 -> BadRequest)
func statusName(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return strconv.Itoa(status)
	}
	return strings.ReplaceAll(text, " ", "")
}

func toReservationPayload(req *Request) *slotservice.ReservationPayload {
	var comments string
	if req.Comments != nil {
		comments = *req.Comments
	}

	return &slotservice.ReservationPayload{
		FacilityID: req.FacilityID.String(),
		Start:      req.Start,
		End:        req.End,
		Comments:   comments,
		Patient: slotservice.ReservationPatient{
			Name:       req.Patient.Name,
			SecondName: req.Patient.SecondName,
			Email:      req.Patient.Email,
			Phone:      req.Patient.Phone,
		},
	}
}
