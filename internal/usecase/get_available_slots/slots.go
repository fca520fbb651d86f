package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/integrations/slotservice"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// weekdayOffsets явное соответствие имени дня недели смещению от понедельника
var weekdayOffsets = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// weekdayOrder канонический порядок обхода дней: неделя начинается с понедельника
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// expandWorkPeriod разворачивает рабочие часы дня в последовательность
// слотов-кандидатов фиксированной длительности: утренний прогон от StartHour
// до LunchStartHour и послеобеденный от LunchEndHour до EndHour.
//
// Граница прогона применяется только к НАЧАЛУ слота (строгое "меньше"):
// слот, конец которого пересекает границу, всё равно генерируется — ровно так
// границы слотов считает сам Slot API, и от этого зависят ожидаемые количества.
func expandWorkPeriod(wp *slotservice.WorkPeriod, referenceDate time.Time, slotDurationMinutes int) ([]domain.Slot, error) {
	if wp == nil {
		// День без опубликованных рабочих часов слотов не даёт.
		// Это защита от неконсистентных данных upstream, а не ошибка.
		return nil, nil
	}

	if slotDurationMinutes <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	step := time.Duration(slotDurationMinutes) * time.Minute
	slots := make([]domain.Slot, 0)

	// StartHour - LunchStartHour
	lunchStart := referenceDate.Add(time.Duration(wp.LunchStartHour) * time.Hour)
	for appointment := referenceDate.Add(time.Duration(wp.StartHour) * time.Hour); appointment.Before(lunchStart); appointment = appointment.Add(step) {
		slots = append(slots, domain.Slot{
			Start: types.NewDateTime(appointment),
			End:   types.NewDateTime(appointment.Add(step)),
		})
	}

	// LunchEndHour - EndHour
	end := referenceDate.Add(time.Duration(wp.EndHour) * time.Hour)
	for appointment := referenceDate.Add(time.Duration(wp.LunchEndHour) * time.Hour); appointment.Before(end); appointment = appointment.Add(step) {
		slots = append(slots, domain.Slot{
			Start: types.NewDateTime(appointment),
			End:   types.NewDateTime(appointment.Add(step)),
		})
	}

	return slots, nil
}

// slotKey ключ интервала для исключения по точному совпадению границ
type slotKey struct {
	start int64
	end   int64
}

func keyOf(slot domain.Slot) slotKey {
	return slotKey{
		start: slot.Start.Unix(),
		end:   slot.End.Unix(),
	}
}

// normalizeBusySlots собирает занятые интервалы всей недели в множество.
// Равенство интервалов определяется только точным совпадением начала и конца —
// пересечения и вложенность сознательно не учитываются, Slot API сообщает
// занятость строго по границам слотов. Дубликаты схлопываются.
func normalizeBusySlots(days []slotservice.DayEntry) map[slotKey]struct{} {
	busy := make(map[slotKey]struct{})

	for _, day := range days {
		for _, b := range day.Schedule.BusySlots {
			busy[keyOf(domain.Slot{Start: b.Start, End: b.End})] = struct{}{}
		}
	}

	return busy
}

// computeAvailableSlots вычисляет свободные слоты недели: все кандидаты минус
// занятые (разность множеств по точному совпадению границ)
func (uc *UseCase) computeAvailableSlots(availability *slotservice.WeeklyAvailability, weekStart time.Time) ([]domain.Slot, error) {
	possible := make([]domain.Slot, 0)

	if uc.legacyDayMapping {
		// Режим совместимости: i-я запись ответа получает дату weekStart + i дней
		// в порядке ключей исходного JSON, безотносительно имён дней
		referenceDate := weekStart
		for _, day := range availability.Days {
			slots, err := expandWorkPeriod(day.Schedule.WorkPeriod, referenceDate, availability.SlotDurationMinutes)
			if err != nil {
				return nil, err
			}
			possible = append(possible, slots...)
			referenceDate = referenceDate.AddDate(0, 0, 1)
		}
	} else {
		for _, weekday := range weekdayOrder {
			schedule, ok := availability.ScheduleFor(weekday)
			if !ok {
				continue
			}
			referenceDate := weekStart.AddDate(0, 0, weekdayOffsets[weekday])
			slots, err := expandWorkPeriod(schedule.WorkPeriod, referenceDate, availability.SlotDurationMinutes)
			if err != nil {
				return nil, err
			}
			possible = append(possible, slots...)
		}

		for _, day := range availability.Days {
			if _, known := weekdayOffsets[day.Name]; !known {
				uc.logger.Warn("GetAvailableSlots: unknown weekday key %q in upstream payload, skipping", day.Name)
			}
		}
	}

	busy := normalizeBusySlots(availability.Days)

	available := make([]domain.Slot, 0, len(possible))
	for _, slot := range possible {
		if _, taken := busy[keyOf(slot)]; taken {
			continue
		}
		available = append(available, slot)
	}

	return available, nil
}

// weekdayFromMonday индекс дня недели при неделе, начинающейся с понедельника
func weekdayFromMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// truncateToDay обнуляет время, оставляя календарную дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// resolveWeekStart определяет дату начала недели для запроса к Slot API.
// Первым днём недели сознательно считается понедельник.
//
// В режиме совместимости смещение берётся от дня недели ТЕКУЩЕЙ даты, а не
// запрошенной — так вела себя историческая реализация, и зафиксированные ею
// результаты воспроизводимы только при этом прочтении.
func (uc *UseCase) resolveWeekStart(requested, now time.Time) time.Time {
	if uc.legacyDayMapping {
		return truncateToDay(requested).AddDate(0, 0, -weekdayFromMonday(now))
	}
	return truncateToDay(requested).AddDate(0, 0, -weekdayFromMonday(requested))
}
