package take_slot

import (
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// Сообщения отказов — проводной контракт, тексты зафиксированы и не переводятся
const (
	msgStartAfterEnd = "Slot has to start before ending"
	msgPatientEmpty  = "Patient data cannot be empty"
	msgReserved      = "Slot has been reserved successfully"

	msgNameEmpty       = "'Name' must not be empty."
	msgSecondNameEmpty = "'Second Name' must not be empty."
	msgEmailEmpty      = "'Email' must not be empty."
	msgEmailInvalid    = "'Email' is not a valid email address."
	msgPhoneEmpty      = "'Phone' must not be empty."
)

// validateRequest проверяет запрос до обращения к Slot API.
// Возвращает причину отказа или пустую строку, если запрос корректен.
// Порядок проверок фиксирован: сначала границы интервала, затем наличие
// пациента, затем его поля — первая неудача завершает проверку.
func validateRequest(req *Request) string {
	if req.Start.After(req.End.Time) {
		return msgStartAfterEnd
	}

	if req.Patient == nil {
		return msgPatientEmpty
	}

	return validatePatient(req.Patient)
}

// validatePatient проверяет поля пациента все сразу; сообщения о всех
// неуспешных полях объединяются запятой
func validatePatient(p *domain.Patient) string {
	var failures []string

	if p.Name == "" {
		failures = append(failures, msgNameEmpty)
	}
	if p.SecondName == "" {
		failures = append(failures, msgSecondNameEmpty)
	}
	if p.Email == "" {
		failures = append(failures, msgEmailEmpty)
	} else if !isValidEmail(p.Email) {
		failures = append(failures, msgEmailInvalid)
	}
	if p.Phone == "" {
		failures = append(failures, msgPhoneEmpty)
	}

	return strings.Join(failures, ", ")
}

// isValidEmail синтаксическая проверка почтового адреса
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
