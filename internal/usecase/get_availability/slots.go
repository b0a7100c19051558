package get_availability

import (
	"time"

	"github.com/glamnails/booking-service/internal/domain"
	"github.com/glamnails/booking-service/pkg/types"
)

// GenerateTimeSlots строит каталог слотов-кандидатов: от open с фиксированным
// шагом step, пока слот целиком помещается до close
func GenerateTimeSlots(open, close types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if err := open.Validate(); err != nil {
		return nil, err
	}
	if err := close.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		slotEnd, err := current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(close) {
			break
		}

		slots = append(slots, current)

		current, err = current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// dayOfWeekName возвращает английское название дня недели ("Monday", ...)
// в том виде, в каком дни хранятся в строках расписания.
// Дата трактуется как календарная, без привязки к часовому поясу
func dayOfWeekName(date time.Time) string {
	return date.Weekday().String()
}

// buildAvailability вычисляет карту слот -> свободные мастера в памяти.
// Мастер свободен в слоте, если хотя бы одна строка его расписания покрывает
// слот и слот не занят существующей записью. Порядок мастеров в списках
// повторяет порядок technicians
func buildAvailability(
	slots []types.TimeString,
	technicians []*domain.Technician,
	schedules []*domain.ScheduleEntry,
	appointments []*domain.Appointment,
) map[types.TimeString][]TechnicianInfo {
	schedulesByTech := make(map[int64][]*domain.ScheduleEntry, len(technicians))
	for _, entry := range schedules {
		schedulesByTech[entry.TechnicianID] = append(schedulesByTech[entry.TechnicianID], entry)
	}

	type occupancy struct {
		technicianID int64
		slot         types.TimeString
	}
	booked := make(map[occupancy]struct{}, len(appointments))
	for _, appt := range appointments {
		booked[occupancy{appt.TechnicianID, appt.TimeSlot}] = struct{}{}
	}

	result := make(map[types.TimeString][]TechnicianInfo, len(slots))
	for _, slot := range slots {
		available := make([]TechnicianInfo, 0)

		for _, tech := range technicians {
			if !isScheduled(schedulesByTech[tech.ID], slot) {
				continue
			}
			if _, taken := booked[occupancy{tech.ID, slot}]; taken {
				continue
			}
			available = append(available, TechnicianInfo{ID: tech.ID, Name: tech.Name})
		}

		result[slot] = available
	}

	return result
}

// isScheduled возвращает true, если хотя бы одна строка расписания покрывает слот
func isScheduled(entries []*domain.ScheduleEntry, slot types.TimeString) bool {
	for _, entry := range entries {
		if entry.CoversSlot(slot) {
			return true
		}
	}
	return false
}
