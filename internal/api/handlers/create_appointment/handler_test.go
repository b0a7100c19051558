package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamnails/booking-service/internal/domain"
	createAppointment "github.com/glamnails/booking-service/internal/usecase/create_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointmentRepo struct {
	created *domain.Appointment
	nextID  int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.ID = f.nextID
	f.created = appt
	return appt, nil
}

// newHandler собирает handler поверх реального use case с фейковым хранилищем
func newHandler(repo *fakeAppointmentRepo) *Handler {
	uc := createAppointment.NewUseCase(repo, nopLogger{})
	return NewHandler(uc, nopLogger{})
}

func doPost(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 7}
	h := newHandler(repo)

	body := `{
		"customer_name": "Jane Doe",
		"phone": "555-0101",
		"email": "jane@example.com",
		"service_id": 1,
		"technician_id": 1,
		"date": "2025-10-13",
		"time_slot": "09:00"
	}`
	rec := doPost(t, h, body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Appointment booked successfully", resp.Message)
	assert.Equal(t, int64(7), resp.ID)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Jane Doe", repo.created.CustomerID)
}

func TestHandle_MissingServiceID(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 1}
	h := newHandler(repo)

	body := `{
		"customer_name": "Jane Doe",
		"phone": "555-0101",
		"technician_id": 1,
		"date": "2025-10-13",
		"time_slot": "09:00"
	}`
	rec := doPost(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Запись не должна быть создана
	assert.Nil(t, repo.created)
}

func TestHandle_InvalidJSON(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 1}
	h := newHandler(repo)

	rec := doPost(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
	assert.Nil(t, repo.created)
}

func TestHandle_InvalidDate(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 1}
	h := newHandler(repo)

	body := `{
		"customer_name": "Jane Doe",
		"phone": "555-0101",
		"service_id": 1,
		"technician_id": 1,
		"date": "13/10/2025",
		"time_slot": "09:00"
	}`
	rec := doPost(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid date format")
	assert.Nil(t, repo.created)
}

func TestHandle_InvalidTimeSlot(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 1}
	h := newHandler(repo)

	body := `{
		"customer_name": "Jane Doe",
		"phone": "555-0101",
		"service_id": 1,
		"technician_id": 1,
		"date": "2025-10-13",
		"time_slot": "9am"
	}`
	rec := doPost(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid time slot format")
	assert.Nil(t, repo.created)
}
