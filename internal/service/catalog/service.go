package catalog

import (
	"context"
	"fmt"

	"github.com/glamnails/booking-service/internal/service/catalog/models"
)

// Service сервис каталога: услуги и мастера салона
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListServices возвращает все услуги каталога
func (s *Service) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services", len(services))
	return models.FromDomainServices(services), nil
}

// ListTechnicians возвращает всех мастеров со списками выполняемых услуг
func (s *Service) ListTechnicians(ctx context.Context) ([]models.TechnicianResponse, error) {
	technicians, err := s.catalogRepo.ListTechniciansWithServices(ctx)
	if err != nil {
		s.logger.Error("ListTechnicians: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTechnicians - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTechnicians: successfully fetched %d technicians", len(technicians))
	return models.FromDomainTechnicians(technicians), nil
}
