package models

import "github.com/glamnails/booking-service/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
}

// TechnicianResponse мастер со списком выполняемых услуг через запятую
type TechnicianResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Services string `json:"services"`
}

// FromDomainServices конвертирует список услуг в DTO
func FromDomainServices(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}
	return result
}

// FromDomainTechnicians конвертирует список мастеров в DTO
func FromDomainTechnicians(technicians []*domain.TechnicianWithServices) []TechnicianResponse {
	result := make([]TechnicianResponse, 0, len(technicians))
	for _, tech := range technicians {
		result = append(result, TechnicianResponse{
			ID:       tech.ID,
			Name:     tech.Name,
			Services: tech.Services,
		})
	}
	return result
}
