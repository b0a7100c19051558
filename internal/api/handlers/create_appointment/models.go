package create_appointment

import (
	"time"

	"github.com/glamnails/booking-service/internal/domain"
	createAppointment "github.com/glamnails/booking-service/internal/usecase/create_appointment"
	"github.com/glamnails/booking-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerID   string  `json:"customer_id,omitempty"` // опционально, по умолчанию customer_name
	CustomerName string  `json:"customer_name"`
	Phone        string  `json:"phone"`
	Email        *string `json:"email,omitempty"`
	ServiceID    int64   `json:"service_id"`
	TechnicianID int64   `json:"technician_id"`
	Date         string  `json:"date"`      // "2025-10-13"
	TimeSlot     string  `json:"time_slot"` // "10:00"
}

// CreateAppointmentResponse HTTP response model: подтверждение с id новой записи
type CreateAppointmentResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Email:        r.Email,
		ServiceID:    r.ServiceID,
		TechnicianID: r.TechnicianID,
		Date:         date,
		TimeSlot:     timeSlot,
	}, nil
}
