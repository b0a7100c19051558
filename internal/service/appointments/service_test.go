package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamnails/booking-service/internal/domain"
	apptRepo "github.com/glamnails/booking-service/internal/infra/storage/appointment"
	"github.com/glamnails/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	details []*domain.AppointmentDetails
	listErr error

	deleteErr     error
	gotCustomerID *string
	gotDeleteID   int64
}

func (f *fakeRepo) ListDetailed(_ context.Context, customerID *string) ([]*domain.AppointmentDetails, error) {
	f.gotCustomerID = customerID
	return f.details, f.listErr
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.gotDeleteID = id
	return f.deleteErr
}

func sampleDetails(t *testing.T) []*domain.AppointmentDetails {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2025-10-13")
	require.NoError(t, err)

	return []*domain.AppointmentDetails{
		{
			Appointment: domain.Appointment{
				ID:           1,
				CustomerID:   "Jane Doe",
				CustomerName: "Jane Doe",
				Phone:        "555-0101",
				ServiceID:    1,
				TechnicianID: 1,
				Date:         date,
				TimeSlot:     "09:00",
			},
			ServiceName:    "Classic Manicure",
			TechnicianName: "Alice",
		},
		{
			Appointment: domain.Appointment{
				ID:           2,
				CustomerID:   "bob-7",
				CustomerName: "Bob Smith",
				Phone:        "555-0102",
				ServiceID:    3,
				TechnicianID: 2,
				Date:         date,
				TimeSlot:     "10:00",
			},
			ServiceName:    "Gel Manicure",
			TechnicianName: "Bob",
		},
	}
}

func TestList_All(t *testing.T) {
	repo := &fakeRepo{details: sampleDetails(t)}
	svc := NewService(repo, nopLogger{})

	result, err := svc.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Nil(t, repo.gotCustomerID)
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, "Classic Manicure", result[0].ServiceName)
	assert.Equal(t, "2025-10-13", result[0].Date)
	assert.Equal(t, "09:00", result[0].TimeSlot)
}

func TestList_FilterPassedThrough(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), ptr.Ptr("jane-42"))
	require.NoError(t, err)

	require.NotNil(t, repo.gotCustomerID)
	assert.Equal(t, "jane-42", *repo.gotCustomerID)
}

func TestList_EmptyResultIsEmptySlice(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	result, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestList_RepositoryError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.gotDeleteID)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeRepo{deleteErr: apptRepo.ErrAppointmentNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_RepositoryError(t *testing.T) {
	repo := &fakeRepo{deleteErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
