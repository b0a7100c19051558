package create_appointment

import (
	"context"

	"github.com/glamnails/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// Create создает запись и возвращает её с присвоенным id
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
