package slotservice

import (
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Facility информация об учреждении из Slot API (сквозные данные, без логики)
type Facility struct {
	FacilityID string `json:"FacilityId"`
	Name       string `json:"Name"`
	Address    string `json:"Address"`
}

// WorkPeriod рабочие часы дня: открытие, закрытие и обеденный перерыв (часы 0-23).
// Инвариант Slot API: StartHour <= LunchStartHour <= LunchEndHour <= EndHour.
type WorkPeriod struct {
	StartHour      int `json:"StartHour"`
	EndHour        int `json:"EndHour"`
	LunchStartHour int `json:"LunchStartHour"`
	LunchEndHour   int `json:"LunchEndHour"`
}

// BusySlot уже занятый интервал, о котором сообщил Slot API
type BusySlot struct {
	Start types.DateTime `json:"Start"`
	End   types.DateTime `json:"End"`
}

// DaySchedule расписание одного дня недели. WorkPeriod может отсутствовать —
// в такой день приёма нет и слоты не генерируются
type DaySchedule struct {
	WorkPeriod *WorkPeriod `json:"WorkPeriod"`
	BusySlots  []BusySlot  `json:"BusySlots"`
}

// DayEntry день недели вместе с именем ключа, под которым его вернул Slot API
type DayEntry struct {
	Name     string
	Schedule DaySchedule
}

// WeeklyAvailability недельное расписание учреждения.
// Days хранит дни в порядке ключей исходного JSON — этот порядок нужен
// режиму совместимости при сопоставлении дней датам.
type WeeklyAvailability struct {
	Facility            Facility
	SlotDurationMinutes int
	Days                []DayEntry
}

// ScheduleFor возвращает расписание дня по имени дня недели
func (w *WeeklyAvailability) ScheduleFor(weekday string) (DaySchedule, bool) {
	for _, day := range w.Days {
		if day.Name == weekday {
			return day.Schedule, true
		}
	}
	return DaySchedule{}, false
}

// ReservationPayload тело запроса бронирования в формате Slot API
type ReservationPayload struct {
	FacilityID string             `json:"FacilityId"`
	Start      types.DateTime     `json:"Start"`
	End        types.DateTime     `json:"End"`
	Comments   string             `json:"Comments"`
	Patient    ReservationPatient `json:"Patient"`
}

// ReservationPatient данные пациента в формате Slot API
type ReservationPatient struct {
	Name       string `json:"Name"`
	SecondName string `json:"SecondName"`
	Email      string `json:"Email"`
	Phone      string `json:"Phone"`
}
