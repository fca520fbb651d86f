package take_slot

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	FacilityID uuid.UUID       // идентификатор учреждения из недельного расписания
	Start      types.DateTime  // начало слота
	End        types.DateTime  // конец слота
	Comments   *string         // комментарий для врача (опционально)
	Patient    *domain.Patient // данные пациента
}

// Response результат попытки бронирования
type Response struct {
	Accepted bool   // принял ли Slot API бронирование
	Message  string // человекочитаемая причина отказа либо подтверждение
}
