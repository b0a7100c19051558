package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/glamnails/booking-service/internal/domain"
	"github.com/glamnails/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись и возвращает её с присвоенным id
// Вставка выполняется без проверки занятости слота и без транзакции:
// корректность выбранного слота обеспечивает предшествующий запрос доступности
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"customer_name",
			"phone",
			"email",
			"service_id",
			"technician_id",
			"date",
			"time_slot",
		).
		Values(
			appt.CustomerID,
			appt.CustomerName,
			appt.Phone,
			appt.Email,
			appt.ServiceID,
			appt.TechnicianID,
			appt.Date,
			appt.TimeSlot,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&appt.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appt, nil
}

// GetByDateForTechnicians возвращает записи указанных мастеров на указанную дату
// Используется движком доступности для проверки занятости слотов
func (r *Repository) GetByDateForTechnicians(ctx context.Context, date time.Time, technicianIDs []int64) ([]*domain.Appointment, error) {
	if len(technicianIDs) == 0 {
		return []*domain.Appointment{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"customer_id",
		"customer_name",
		"phone",
		"email",
		"service_id",
		"technician_id",
		"date",
		"time_slot",
	).
		From("appointments").
		Where(squirrel.Eq{"date": date, "technician_id": technicianIDs}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateForTechnicians - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateForTechnicians - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var appt domain.Appointment
		err := rows.Scan(
			&appt.ID,
			&appt.CustomerID,
			&appt.CustomerName,
			&appt.Phone,
			&appt.Email,
			&appt.ServiceID,
			&appt.TechnicianID,
			&appt.Date,
			&appt.TimeSlot,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDateForTechnicians - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDateForTechnicians - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// ListDetailed возвращает записи с названиями услуги и мастера в порядке создания
// Если указан customerID, возвращаются только записи этого клиента
func (r *Repository) ListDetailed(ctx context.Context, customerID *string) ([]*domain.AppointmentDetails, error) {
	selectBuilder := psqlbuilder.Select(
		"a.id",
		"a.customer_id",
		"a.customer_name",
		"a.phone",
		"a.email",
		"a.service_id",
		"a.technician_id",
		"a.date",
		"a.time_slot",
		"s.name AS service_name",
		"t.name AS technician_name",
	).
		From("appointments a").
		Join("services s ON a.service_id = s.id").
		Join("technicians t ON a.technician_id = t.id").
		OrderBy("a.id ASC")

	if customerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.customer_id": *customerID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetailed - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetailed - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDetailed(rows)
}

// Delete удаляет запись по id
// Возвращает ErrAppointmentNotFound, если ни одна строка не была удалена
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanDetailed сканирует результаты запроса в слайс обогащённых записей
func (r *Repository) scanDetailed(rows *sql.Rows) ([]*domain.AppointmentDetails, error) {
	appointments := make([]*domain.AppointmentDetails, 0)

	for rows.Next() {
		var appt domain.AppointmentDetails
		err := rows.Scan(
			&appt.ID,
			&appt.CustomerID,
			&appt.CustomerName,
			&appt.Phone,
			&appt.Email,
			&appt.ServiceID,
			&appt.TechnicianID,
			&appt.Date,
			&appt.TimeSlot,
			&appt.ServiceName,
			&appt.TechnicianName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetailed - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetailed - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
