package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/glamnails/booking-service/internal/service/appointments"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err   error
	gotID int64
}

func (f *fakeService) Cancel(_ context.Context, id int64) error {
	f.gotID = id
	return f.err
}

func doDelete(t *testing.T, h *Handler, appointmentID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/appointments/"+appointmentID, nil)
	req = mux.SetURLVars(req, map[string]string{"appointmentId": appointmentID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doDelete(t, h, "42")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Appointment cancelled successfully")
	assert.Equal(t, int64(42), svc.gotID)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeService{err: appointments.ErrAppointmentNotFound}
	h := NewHandler(svc, nopLogger{})

	rec := doDelete(t, h, "999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Appointment not found")
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doDelete(t, h, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.gotID)
}

func TestHandle_ServiceError(t *testing.T) {
	svc := &fakeService{err: appointments.ErrInternal}
	h := NewHandler(svc, nopLogger{})

	rec := doDelete(t, h, "1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
