package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/integrations/slotservice"
)

// UseCase use case получения свободных слотов недели
type UseCase struct {
	client           SlotServiceClient
	timeProvider     TimeProvider
	logger           Logger
	legacyDayMapping bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client SlotServiceClient, legacyDayMapping bool, logger Logger) *UseCase {
	return &UseCase{
		client:           client,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
		legacyDayMapping: legacyDayMapping,
	}
}

// Execute выполняет use case получения свободных слотов.
//
// Путь чтения деградирует мягко: недоступность Slot API или неразборчивые
// данные дают пустой список слотов, а не ошибку. Единственное исключение —
// отсутствующая конфигурация авторизации, она пробрасывается наверх.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	requested := req.Date
	if requested.IsZero() {
		requested = now
	}

	weekStart := uc.resolveWeekStart(requested, now)

	uc.logger.Info("GetAvailableSlots: requested=%s, week_start=%s, legacy_day_mapping=%t",
		requested.Format(time.RFC3339), weekStart.Format(domain.DateFormat), uc.legacyDayMapping)

	availability, err := uc.client.GetWeeklyAvailability(ctx, weekStart)
	if err != nil {
		if errors.Is(err, slotservice.ErrNotConfigured) {
			return nil, err
		}
		uc.logger.Warn("GetAvailableSlots: upstream fetch failed, returning empty slot list: %v", err)
		return &Response{WeekStart: weekStart, Slots: []domain.Slot{}}, nil
	}

	slots, err := uc.computeAvailableSlots(availability, weekStart)
	if err != nil {
		if errors.Is(err, ErrInvalidSlotDuration) {
			uc.logger.Warn("GetAvailableSlots: malformed upstream payload (SlotDurationMinutes=%d), returning empty slot list",
				availability.SlotDurationMinutes)
			return &Response{WeekStart: weekStart, Slots: []domain.Slot{}}, nil
		}
		return nil, fmt.Errorf("%w: failed to compute available slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d available slots for facility=%q, week_start=%s",
		len(slots), availability.Facility.FacilityID, weekStart.Format(domain.DateFormat))

	return &Response{WeekStart: weekStart, Slots: slots}, nil
}
