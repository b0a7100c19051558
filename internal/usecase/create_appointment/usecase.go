package create_appointment

import (
	"context"
	"fmt"

	"github.com/glamnails/booking-service/internal/domain"
)

// UseCase use case создания записи клиента
// Пригодность мастера для услуги и попадание слота в расписание на записи
// не перепроверяются: клиент обязан предварительно запросить доступность.
// Атомарной связки "проверка + вставка" нет, поэтому два конкурентных
// бронирования одного слота могут пройти оба (последняя запись побеждает)
type UseCase struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(apptRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, service=%d, technician=%d, date=%s, slot=%s",
		req.CustomerName, req.ServiceID, req.TechnicianID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// Идентификатор клиента по умолчанию - его имя
	customerID := req.CustomerID
	if customerID == "" {
		customerID = req.CustomerName
	}

	appt := &domain.Appointment{
		CustomerID:   customerID,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		ServiceID:    req.ServiceID,
		TechnicianID: req.TechnicianID,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
	}

	created, err := uc.apptRepo.Create(ctx, appt)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", created.ID)

	return &Response{
		ID:           created.ID,
		CustomerID:   created.CustomerID,
		CustomerName: created.CustomerName,
		Phone:        created.Phone,
		Email:        created.Email,
		ServiceID:    created.ServiceID,
		TechnicianID: created.TechnicianID,
		Date:         created.Date,
		TimeSlot:     created.TimeSlot,
	}, nil
}
