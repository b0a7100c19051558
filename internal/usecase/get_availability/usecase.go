package get_availability

import (
	"context"
	"fmt"

	"github.com/glamnails/booking-service/internal/domain"
	"github.com/glamnails/booking-service/pkg/types"
)

// UseCase use case вычисления доступности: для услуги и даты возвращает,
// какие мастера свободны в каждом слоте-кандидате.
// Вместо проверки занятости по одному запросу на пару слот/мастер расписания
// и записи на дату читаются одним запросом каждое, доступность вычисляется
// в памяти. Только чтение, побочных эффектов нет
type UseCase struct {
	catalogRepo CatalogRepository
	apptRepo    AppointmentRepository
	slots       []types.TimeString
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// slots - каталог слотов-кандидатов (см. GenerateTimeSlots)
func NewUseCase(
	catalogRepo CatalogRepository,
	apptRepo AppointmentRepository,
	slots []types.TimeString,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		apptRepo:    apptRepo,
		slots:       slots,
		logger:      logger,
	}
}

// Execute выполняет use case вычисления доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// Мастера, выполняющие услугу. Существование услуги отдельно не проверяется:
	// для неизвестной услуги список пуст и все слоты вернутся пустыми
	technicians, err := uc.catalogRepo.GetEligibleTechnicians(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get eligible technicians for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get eligible technicians: %v", ErrInternal, err)
	}

	if len(technicians) == 0 {
		uc.logger.Info("GetAvailability: no eligible technicians for service=%d", req.ServiceID)
		return uc.emptyResponse(req), nil
	}

	technicianIDs := make([]int64, len(technicians))
	for i, tech := range technicians {
		technicianIDs[i] = tech.ID
	}

	dayOfWeek := dayOfWeekName(req.Date)

	schedules, err := uc.catalogRepo.GetSchedulesForDay(ctx, technicianIDs, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get schedules for %s: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	appointments, err := uc.apptRepo.GetByDateForTechnicians(ctx, req.Date, technicianIDs)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots := buildAvailability(uc.slots, technicians, schedules, appointments)

	uc.logger.Info("GetAvailability: computed %d slots for service=%d, date=%s (%s), technicians=%d, appointments=%d",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat), dayOfWeek, len(technicians), len(appointments))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}

// emptyResponse возвращает карту со всеми слотами-кандидатами и пустыми списками
func (uc *UseCase) emptyResponse(req *Request) *Response {
	slots := make(map[types.TimeString][]TechnicianInfo, len(uc.slots))
	for _, slot := range uc.slots {
		slots[slot] = []TechnicianInfo{}
	}

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
