package models

import (
	"github.com/glamnails/booking-service/internal/domain"
)

// AppointmentResponse запись с названиями услуги и мастера для отображения
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	CustomerID     string  `json:"customer_id"`
	CustomerName   string  `json:"customer_name"`
	Phone          string  `json:"phone"`
	Email          *string `json:"email,omitempty"`
	ServiceID      int64   `json:"service_id"`
	TechnicianID   int64   `json:"technician_id"`
	Date           string  `json:"date"`      // "2025-10-13"
	TimeSlot       string  `json:"time_slot"` // "10:00"
	ServiceName    string  `json:"service_name"`
	TechnicianName string  `json:"technician_name"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.AppointmentDetails) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:             a.ID,
		CustomerID:     a.CustomerID,
		CustomerName:   a.CustomerName,
		Phone:          a.Phone,
		Email:          a.Email,
		ServiceID:      a.ServiceID,
		TechnicianID:   a.TechnicianID,
		Date:           a.Date.Format(domain.DateFormat),
		TimeSlot:       a.TimeSlot.String(),
		ServiceName:    a.ServiceName,
		TechnicianName: a.TechnicianName,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.AppointmentDetails) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		if resp := FromDomainAppointment(appt); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
