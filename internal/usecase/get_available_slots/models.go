package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// Request модель запроса свободных слотов
type Request struct {
	Date time.Time // любая дата внутри интересующей недели; нулевое значение — текущая неделя
}

// Response модель ответа со свободными слотами недели
type Response struct {
	WeekStart time.Time     // дата начала недели, по которой ходили в Slot API
	Slots     []domain.Slot // свободные слоты в порядке генерации
}
