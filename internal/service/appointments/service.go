package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/glamnails/booking-service/internal/infra/storage/appointment"
	"github.com/glamnails/booking-service/internal/service/appointments/models"
)

// Service сервис просмотра и отмены записей
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// List возвращает записи в порядке создания, обогащённые названиями услуги и мастера
// Если указан customerID, возвращаются только записи этого клиента;
// без фильтра возвращаются все записи (витрина для персонала)
func (s *Service) List(ctx context.Context, customerID *string) ([]models.AppointmentResponse, error) {
	if customerID != nil {
		s.logger.Info("List: fetching appointments for customer=%s", *customerID)
	} else {
		s.logger.Info("List: fetching all appointments")
	}

	appointments, err := s.apptRepo.ListDetailed(ctx, customerID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel удаляет запись по id
// Отсутствие записи - отдельный исход (ErrAppointmentNotFound), не успех
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if err := s.apptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}
