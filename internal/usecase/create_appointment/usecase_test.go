package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamnails/booking-service/internal/domain"
	"github.com/glamnails/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointmentRepo struct {
	created *domain.Appointment
	nextID  int64
	err     error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	appt.ID = f.nextID
	f.created = appt
	return appt, nil
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2025-10-13")
	require.NoError(t, err)

	return &Request{
		CustomerName: "Jane Doe",
		Phone:        "555-0101",
		Email:        ptr.Ptr("jane@example.com"),
		ServiceID:    1,
		TechnicianID: 1,
		Date:         date,
		TimeSlot:     "09:00",
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 17}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(17), resp.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Jane Doe", repo.created.CustomerName)
	// Идентификатор клиента по умолчанию - его имя
	assert.Equal(t, "Jane Doe", repo.created.CustomerID)
}

func TestExecute_ExplicitCustomerIDKept(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 1}
	uc := NewUseCase(repo, nopLogger{})

	req := validRequest(t)
	req.CustomerID = "jane-42"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "jane-42", repo.created.CustomerID)
}

func TestExecute_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing customer name", mutate: func(r *Request) { r.CustomerName = "" }},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "missing service id", mutate: func(r *Request) { r.ServiceID = 0 }},
		{name: "missing technician id", mutate: func(r *Request) { r.TechnicianID = 0 }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing time slot", mutate: func(r *Request) { r.TimeSlot = "" }},
		{name: "malformed time slot", mutate: func(r *Request) { r.TimeSlot = "9am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{nextID: 1}
			uc := NewUseCase(repo, nopLogger{})

			req := validRequest(t)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			// Запись не должна быть создана
			assert.Nil(t, repo.created)
		})
	}
}

func TestExecute_MissingEmailAllowed(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 2}
	uc := NewUseCase(repo, nopLogger{})

	req := validRequest(t)
	req.Email = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.Email)
}

func TestExecute_StorageFailureSurfaces(t *testing.T) {
	repo := &fakeAppointmentRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInternal)
}
