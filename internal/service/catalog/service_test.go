package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamnails/booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	services    []*domain.Service
	technicians []*domain.TechnicianWithServices
	err         error
}

func (f *fakeRepo) ListServices(_ context.Context) ([]*domain.Service, error) {
	return f.services, f.err
}

func (f *fakeRepo) ListTechniciansWithServices(_ context.Context) ([]*domain.TechnicianWithServices, error) {
	return f.technicians, f.err
}

func TestListServices(t *testing.T) {
	repo := &fakeRepo{
		services: []*domain.Service{
			{ID: 1, Name: "Classic Manicure", Price: 20, DurationMinutes: 30},
			{ID: 2, Name: "Classic Pedicure", Price: 25, DurationMinutes: 45},
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.ListServices(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "Classic Manicure", result[0].Name)
	assert.Equal(t, float64(20), result[0].Price)
	assert.Equal(t, 30, result[0].DurationMinutes)
}

func TestListTechnicians(t *testing.T) {
	repo := &fakeRepo{
		technicians: []*domain.TechnicianWithServices{
			{ID: 1, Name: "Alice", Services: "Classic Manicure,Classic Pedicure,Gel Manicure"},
			{ID: 2, Name: "Bob", Services: "Classic Manicure,Gel Manicure"},
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.ListTechnicians(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "Alice", result[0].Name)
	assert.Equal(t, "Classic Manicure,Gel Manicure", result[1].Services)
}

func TestListServices_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.ListServices(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListTechnicians_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.ListTechnicians(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
