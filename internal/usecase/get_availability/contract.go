package get_availability

import (
	"context"
	"time"

	"github.com/glamnails/booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	// GetEligibleTechnicians возвращает мастеров, выполняющих услугу, в порядке каталога
	GetEligibleTechnicians(ctx context.Context, serviceID int64) ([]*domain.Technician, error)

	// GetSchedulesForDay возвращает строки расписания мастеров на день недели
	GetSchedulesForDay(ctx context.Context, technicianIDs []int64, dayOfWeek string) ([]*domain.ScheduleEntry, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByDateForTechnicians возвращает записи мастеров на дату
	GetByDateForTechnicians(ctx context.Context, date time.Time, technicianIDs []int64) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
