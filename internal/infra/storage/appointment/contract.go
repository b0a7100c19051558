package appointment

import "github.com/glamnails/booking-service/pkg/dbmetrics"

// DBExecutor интерфейс выполнения запросов к БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
