package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) GetAll(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id uuid.UUID, upd domain.BookingUpdate) (*domain.Booking, error) {
	args := m.Called(ctx, id, upd)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
