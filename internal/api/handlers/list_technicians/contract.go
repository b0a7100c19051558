package list_technicians

import (
	"context"

	"github.com/glamnails/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListTechnicians(ctx context.Context) ([]models.TechnicianResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
