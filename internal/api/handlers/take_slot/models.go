package take_slot

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	takeSlot "github.com/m04kA/SMC-SlotService/internal/usecase/take_slot"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// ReservationRequest HTTP-модель запроса бронирования
type ReservationRequest struct {
	FacilityID string         `json:"facilityId"`
	Start      types.DateTime `json:"start"`
	End        types.DateTime `json:"end"`
	Comments   *string        `json:"comments,omitempty"`
	Patient    *PatientData   `json:"patient"`
}

// PatientData HTTP-модель данных пациента
type PatientData struct {
	Name       string `json:"name"`
	SecondName string `json:"secondName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// ReservationResponse HTTP-модель результата бронирования
type ReservationResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP-запрос в модель use case
// (с разбором идентификатора учреждения)
func (r *ReservationRequest) ToUseCaseRequest() (*takeSlot.Request, error) {
	facilityID, err := uuid.Parse(r.FacilityID)
	if err != nil {
		return nil, err
	}

	req := &takeSlot.Request{
		FacilityID: facilityID,
		Start:      r.Start,
		End:        r.End,
		Comments:   r.Comments,
	}

	if r.Patient != nil {
		req.Patient = &domain.Patient{
			Name:       r.Patient.Name,
			SecondName: r.Patient.SecondName,
			Email:      r.Patient.Email,
			Phone:      r.Patient.Phone,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-ответ
func FromUseCaseResponse(resp *takeSlot.Response) *ReservationResponse {
	return &ReservationResponse{
		Accepted: resp.Accepted,
		Message:  resp.Message,
	}
}
