package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/integrations/slotservice"
	getAvailableSlots "github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
)

const (
	msgCannotAuthorize = "could not authorize to slot management API"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (optional, ISO 8601)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	requested, ok := ParseRequestedDate(dateStr)
	if !ok {
		// Отсутствующая или нечитаемая дата трактуется как "сейчас"
		requested = time.Now()
		if dateStr != "" {
			h.logger.Warn("GET /availability - Unparseable date %q, falling back to current time", dateStr)
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: requested})
	if err != nil {
		switch {
		case errors.Is(err, slotservice.ErrNotConfigured):
			h.logger.Error("GET /availability - Slot API authorization is not configured")
			handlers.RespondBadRequest(w, msgCannotAuthorize)

		default:
			h.logger.Error("GET /availability - Failed to get available slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots retrieved successfully: week_start=%s, slots_count=%d",
		result.WeekStart.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
