package list_appointments

import (
	"net/http"

	"github.com/glamnails/booking-service/internal/api/handlers"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /appointments
// Query params: customer_id (опционально; без него возвращаются все записи)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var customerID *string
	if v := r.URL.Query().Get("customer_id"); v != "" {
		customerID = &v
	}

	result, err := h.service.List(r.Context(), customerID)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
