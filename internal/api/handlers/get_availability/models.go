package get_availability

import (
	"time"

	"github.com/glamnails/booking-service/internal/domain"
	getAvailability "github.com/glamnails/booking-service/internal/usecase/get_availability"
)

// TechnicianSlot мастер, свободный в слоте
type TechnicianSlot struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AvailabilityResponse карта слот -> свободные мастера
// Отдаётся клиенту как есть: {"09:00": [{"id": 1, "name": "Alice"}], ...}
// Слоты без свободных мастеров присутствуют с пустым списком; фильтрация
// пустых слотов для отображения - задача клиента
type AvailabilityResponse map[string][]TechnicianSlot

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(serviceID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) AvailabilityResponse {
	result := make(AvailabilityResponse, len(resp.Slots))
	for slot, technicians := range resp.Slots {
		list := make([]TechnicianSlot, 0, len(technicians))
		for _, tech := range technicians {
			list = append(list, TechnicianSlot{ID: tech.ID, Name: tech.Name})
		}
		result[slot.String()] = list
	}
	return result
}
