package catalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glamnails/booking-service/internal/domain"
	"github.com/glamnails/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных салона: услуги, мастера,
// навыки мастеров и их еженедельные расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices возвращает все услуги в порядке каталога
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"duration",
	).
		From("services").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Price, &svc.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListTechniciansWithServices возвращает всех мастеров со списком названий
// выполняемых услуг (через запятую, в порядке каталога услуг)
func (r *Repository) ListTechniciansWithServices(ctx context.Context) ([]*domain.TechnicianWithServices, error) {
	query, args, err := psqlbuilder.Select(
		"t.id",
		"t.name",
		"string_agg(s.name, ',' ORDER BY s.id) AS services",
	).
		From("technicians t").
		Join("technician_service ts ON t.id = ts.technician_id").
		Join("services s ON ts.service_id = s.id").
		GroupBy("t.id", "t.name").
		OrderBy("t.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTechniciansWithServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTechniciansWithServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	technicians := make([]*domain.TechnicianWithServices, 0)
	for rows.Next() {
		var tech domain.TechnicianWithServices
		if err := rows.Scan(&tech.ID, &tech.Name, &tech.Services); err != nil {
			return nil, fmt.Errorf("%w: ListTechniciansWithServices - scan row: %v", ErrScanRow, err)
		}
		technicians = append(technicians, &tech)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTechniciansWithServices - rows error: %v", ErrScanRow, err)
	}

	return technicians, nil
}

// GetEligibleTechnicians возвращает мастеров, выполняющих указанную услугу,
// в порядке возрастания id. Для неизвестной услуги возвращает пустой список
func (r *Repository) GetEligibleTechnicians(ctx context.Context, serviceID int64) ([]*domain.Technician, error) {
	query, args, err := psqlbuilder.Select(
		"t.id",
		"t.name",
	).
		From("technicians t").
		Join("technician_service ts ON t.id = ts.technician_id").
		Where(squirrel.Eq{"ts.service_id": serviceID}).
		OrderBy("t.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetEligibleTechnicians - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetEligibleTechnicians - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	technicians := make([]*domain.Technician, 0)
	for rows.Next() {
		var tech domain.Technician
		if err := rows.Scan(&tech.ID, &tech.Name); err != nil {
			return nil, fmt.Errorf("%w: GetEligibleTechnicians - scan row: %v", ErrScanRow, err)
		}
		technicians = append(technicians, &tech)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetEligibleTechnicians - rows error: %v", ErrScanRow, err)
	}

	return technicians, nil
}

// GetSchedulesForDay возвращает все строки расписания указанных мастеров
// на указанный день недели
func (r *Repository) GetSchedulesForDay(ctx context.Context, technicianIDs []int64, dayOfWeek string) ([]*domain.ScheduleEntry, error) {
	if len(technicianIDs) == 0 {
		return []*domain.ScheduleEntry{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"technician_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From("technician_schedule").
		Where(squirrel.Eq{"technician_id": technicianIDs, "day_of_week": dayOfWeek}).
		OrderBy("technician_id ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedulesForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedulesForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.ScheduleEntry, 0)
	for rows.Next() {
		var entry domain.ScheduleEntry
		if err := rows.Scan(&entry.TechnicianID, &entry.DayOfWeek, &entry.StartTime, &entry.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetSchedulesForDay - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSchedulesForDay - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
