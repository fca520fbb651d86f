package take_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/integrations/slotservice"
	takeSlot "github.com/m04kA/SMC-SlotService/internal/usecase/take_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFacilityID  = "facility id must be a valid UUID"
	msgCannotAuthorize    = "could not authorize to slot management API"
	msgReservationFailed  = "slot could not be reserved"
)

type Handler struct {
	useCase TakeSlotUseCase
	logger  Logger
}

func NewHandler(useCase TakeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservation - Invalid facility id %q: %v", req.FacilityID, err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, slotservice.ErrNotConfigured):
			h.logger.Error("POST /reservation - Slot API authorization is not configured")
			handlers.RespondBadRequest(w, msgCannotAuthorize)

		case errors.Is(err, takeSlot.ErrUpstream):
			h.logger.Error("POST /reservation - Upstream request failed: facility=%s, error=%v", req.FacilityID, err)
			handlers.RespondBadRequest(w, msgReservationFailed)

		default:
			h.logger.Error("POST /reservation - Failed to reserve slot: facility=%s, error=%v", req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservation - Processed: facility=%s, accepted=%t, message=%q",
		req.FacilityID, result.Accepted, result.Message)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
