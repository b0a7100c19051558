package domain

import (
	"time"

	"github.com/glamnails/booking-service/pkg/types"
)

// Appointment запись клиента к мастеру на услугу
// Инвариант (не обеспечивается на уровне хранилища): не существует двух записей
// с одинаковой парой (мастер, дата, слот). Проверка выполняется только на чтении
// доступности, поэтому конкурентные бронирования одного слота могут пройти обе —
// принятое ограничение, а не проектируемый сценарий.
type Appointment struct {
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

// AppointmentDetails запись, обогащённая названиями услуги и мастера для отображения
type AppointmentDetails struct {
	Appointment
	ServiceName    string
	TechnicianName string
}
