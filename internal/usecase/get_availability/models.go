package get_availability

import (
	"time"

	"github.com/glamnails/booking-service/pkg/types"
)

// Request модель запроса доступности
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата, на которую запрашивается доступность
}

// Response модель ответа: для каждого слота - свободные мастера
// Слоты без единого свободного мастера присутствуют в карте с пустым списком
type Response struct {
	Date      time.Time
	ServiceID int64
	Slots     map[types.TimeString][]TechnicianInfo
}

// TechnicianInfo мастер, свободный в слоте
type TechnicianInfo struct {
	ID   int64
	Name string
}
