package domain

import "github.com/glamnails/booking-service/pkg/types"

// Service услуга салона. Справочные данные, заполняются при старте сервиса
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// Technician мастер салона. Справочные данные
type Technician struct {
	ID   int64
	Name string
}

// TechnicianWithServices мастер со списком названий выполняемых услуг
// (через запятую, в порядке каталога услуг)
type TechnicianWithServices struct {
	ID       int64
	Name     string
	Services string
}

// ScheduleEntry строка еженедельного расписания мастера
// У мастера может быть ноль, одна или несколько строк на один день недели.
// start < end ожидается, но не проверяется: перевёрнутый интервал просто
// никогда не совпадёт ни с одним слотом.
type ScheduleEntry struct {
	TechnicianID int64
	DayOfWeek    string // название дня недели, например "Monday"
	StartTime    types.TimeString
	EndTime      types.TimeString
}

// CoversSlot возвращает true, если слот попадает в интервал расписания
// (start_time <= slot < end_time)
func (e *ScheduleEntry) CoversSlot(slot types.TimeString) bool {
	return !slot.IsBefore(e.StartTime) && slot.IsBefore(e.EndTime)
}
