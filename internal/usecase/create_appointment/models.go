package create_appointment

import (
	"time"

	"github.com/glamnails/booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID   string  // Идентификатор клиента; если пуст, берётся имя клиента
	CustomerName string  // Имя клиента
	Phone        string  // Телефон
	Email        *string // Email (опционально)
	ServiceID    int64
	TechnicianID int64
	Date         time.Time
	TimeSlot     types.TimeString
}

// Response модель ответа с созданной записью
type Response struct {
	ID           int64
	CustomerID   string
	CustomerName string
	Phone        string
	Email        *string
	ServiceID    int64
	TechnicianID int64
	Date         time.Time
	TimeSlot     types.TimeString
}
