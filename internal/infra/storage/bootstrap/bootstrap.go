// Package bootstrap создаёт схему БД и заполняет её стартовым каталогом салона
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
)

// schema DDL всех таблиц сервиса
// На паре (technician_id, date, time_slot) таблицы appointments сознательно НЕТ
// уникального ограничения: конфликт бронирований проверяется только на чтении
// доступности, конкурентная двойная запись возможна (последняя запись побеждает).
const schema = `
CREATE TABLE IF NOT EXISTS services (
	id BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
	duration INTEGER NOT NULL CHECK (duration > 0)
);

CREATE TABLE IF NOT EXISTS technicians (
	id BIGINT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS technician_service (
	technician_id BIGINT NOT NULL REFERENCES technicians(id),
	service_id BIGINT NOT NULL REFERENCES services(id),
	PRIMARY KEY (technician_id, service_id)
);

CREATE TABLE IF NOT EXISTS technician_schedule (
	technician_id BIGINT NOT NULL REFERENCES technicians(id),
	day_of_week TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	PRIMARY KEY (technician_id, day_of_week, start_time)
);

CREATE TABLE IF NOT EXISTS appointments (
	id BIGSERIAL PRIMARY KEY,
	customer_id TEXT NOT NULL,
	customer_name TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT,
	service_id BIGINT NOT NULL REFERENCES services(id),
	technician_id BIGINT NOT NULL REFERENCES technicians(id),
	date DATE NOT NULL,
	time_slot TEXT NOT NULL
);
`

// seed стартовый каталог: услуги, мастера, их навыки и расписания
// Вставка идемпотентна - строки с уже существующим первичным ключом пропускаются
const seed = `
INSERT INTO services (id, name, price, duration) VALUES
	(1, 'Classic Manicure', 20, 30),
	(2, 'Classic Pedicure', 25, 45),
	(3, 'Gel Manicure', 35, 45),
	(4, 'Nail Art', 15, 30),
	(5, 'French Tip Add-On', 10, 15)
ON CONFLICT (id) DO NOTHING;

INSERT INTO technicians (id, name) VALUES
	(1, 'Alice'),
	(2, 'Bob')
ON CONFLICT (id) DO NOTHING;

INSERT INTO technician_service (technician_id, service_id) VALUES
	(1, 1), (1, 2), (1, 3), (1, 4), (1, 5),
	(2, 1), (2, 3), (2, 4)
ON CONFLICT (technician_id, service_id) DO NOTHING;

INSERT INTO technician_schedule (technician_id, day_of_week, start_time, end_time) VALUES
	(1, 'Monday', '09:00', '17:00'),
	(1, 'Tuesday', '09:00', '17:00'),
	(2, 'Monday', '10:00', '16:00'),
	(2, 'Tuesday', '10:00', '16:00')
ON CONFLICT (technician_id, day_of_week, start_time) DO NOTHING;
`

// Run создаёт таблицы и заполняет стартовые данные
func Run(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("bootstrap: failed to create schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, seed); err != nil {
		return fmt.Errorf("bootstrap: failed to seed catalog: %w", err)
	}

	return nil
}
