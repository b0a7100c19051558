package catalog

import (
	"context"

	"github.com/glamnails/booking-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListTechniciansWithServices(ctx context.Context) ([]*domain.TechnicianWithServices, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
