package health

import (
	"context"
	"net/http"

	"github.com/glamnails/booking-service/internal/api/handlers"
)

// Pinger интерфейс проверки соединения с БД
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse состояние сервиса
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "unreachable",
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Database: "ok",
	})
}
