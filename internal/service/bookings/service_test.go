package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GameLounge-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GameLounge-BookingService/internal/service/bookings/models"
	"github.com/m04kA/GameLounge-BookingService/pkg/ptr"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func newService(repo *mockRepo, now time.Time) *Service {
	svc := NewService(repo, Options{CancellationNotice: time.Hour, Location: ist}, nopLogger{})
	svc.timeProvider = fixedTime{now: now}
	return svc
}

func storedBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		ReferenceNumber: "KGGAB12CD",
		Name:            "Arjun",
		GameType:        "vr",
		Date:            time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "4:00 PM",
		DurationMinutes: 60,
		NumPeople:       2,
		Status:          status,
	}
}

func TestService_CancelByReference(t *testing.T) {
	repo := &mockRepo{}
	b := storedBooking(domain.StatusConfirmed)
	now := time.Date(2025, 6, 14, 14, 0, 0, 0, ist)

	repo.On("GetByReference", mock.Anything, "KGGAB12CD").Return(b, nil)
	repo.On("UpdateStatus", mock.Anything, b.ID, domain.StatusCancelled).Return(nil)

	resp, err := newService(repo, now).CancelByReference(context.Background(), "kggab12cd")
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	repo.AssertExpectations(t)
}

func TestService_CancelByReference_TooLate(t *testing.T) {
	repo := &mockRepo{}
	b := storedBooking(domain.StatusPending)
	// 4:00 PM slot, 30 minutes before
	now := time.Date(2025, 6, 14, 15, 30, 0, 0, ist)

	repo.On("GetByReference", mock.Anything, "KGGAB12CD").Return(b, nil)

	_, err := newService(repo, now).CancelByReference(context.Background(), "KGGAB12CD")

	assert.ErrorIs(t, err, ErrTooLateToCancel)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CancelByReference_ExactlyAtNotice(t *testing.T) {
	repo := &mockRepo{}
	b := storedBooking(domain.StatusPending)
	now := time.Date(2025, 6, 14, 15, 0, 0, 0, ist)

	repo.On("GetByReference", mock.Anything, "KGGAB12CD").Return(b, nil)
	repo.On("UpdateStatus", mock.Anything, b.ID, domain.StatusCancelled).Return(nil)

	_, err := newService(repo, now).CancelByReference(context.Background(), "KGGAB12CD")
	assert.NoError(t, err)
}

func TestService_CancelByReference_AlreadyCancelled(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByReference", mock.Anything, "KGGAB12CD").Return(storedBooking(domain.StatusCancelled), nil)

	_, err := newService(repo, time.Now()).CancelByReference(context.Background(), "KGGAB12CD")
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_CancelByReference_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByReference", mock.Anything, "KGGZZZZZZ").Return(nil, bookingRepo.ErrBookingNotFound)

	svc := newService(repo, time.Now())

	_, err := svc.CancelByReference(context.Background(), "KGGZZZZZZ")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.CancelByReference(context.Background(), "not-a-reference")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	repo.AssertNumberOfCalls(t, "GetByReference", 1)
}

func TestService_List(t *testing.T) {
	repo := &mockRepo{}
	status := domain.StatusPending
	repo.On("GetAll", mock.Anything, domain.BookingsFilter{GameType: ptr.Ptr("vr"), Status: &status}).
		Return([]*domain.Booking{storedBooking(status)}, nil)

	resp, err := newService(repo, time.Now()).List(context.Background(), &models.ListBookingsRequest{
		GameType: ptr.Ptr("vr"),
		Status:   ptr.Ptr("pending"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "2025-06-14", resp.Bookings[0].Date)
}

func TestService_List_InvalidStatus(t *testing.T) {
	_, err := newService(&mockRepo{}, time.Now()).List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_Update(t *testing.T) {
	repo := &mockRepo{}
	b := storedBooking(domain.StatusConfirmed)
	status := domain.StatusConfirmed

	repo.On("Update", mock.Anything, b.ID, domain.BookingUpdate{Status: &status}).Return(b, nil)

	resp, err := newService(repo, time.Now()).Update(context.Background(), b.ID, &models.UpdateBookingRequest{
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestService_Delete(t *testing.T) {
	repo := &mockRepo{}
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(bookingRepo.ErrBookingNotFound).Once()

	err := newService(repo, time.Now()).Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID_RepositoryError(t *testing.T) {
	repo := &mockRepo{}
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, errors.New("connection reset"))

	_, err := newService(repo, time.Now()).GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrInternal)
}
