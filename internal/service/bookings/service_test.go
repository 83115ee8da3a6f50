package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	bookingRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/booking"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	byClient []*domain.Booking

	updatedStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b := *f.booking
	return &b, nil
}

func (f *fakeBookingRepo) ListByClient(_ context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.byClient {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.booking == nil || f.booking.ID != id {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus = &status
	f.booking.Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            10,
		SlotID:        1,
		ClientID:      42,
		ServiceID:     7,
		Status:        status,
		PaymentStatus: domain.PaymentUnpaid,
		ServiceName:   "Педикюр",
		PriceCents:    4500,
		RefundStatus:  domain.RefundNone,
	}
}

func TestGetByID(t *testing.T) {
	t.Run("owner can read own booking", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{booking: testBooking(domain.StatusPending)}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 10, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("foreign booking is denied", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{booking: testBooking(domain.StatusPending)}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 10, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 10, 42)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetClientBookings(t *testing.T) {
	repo := &fakeBookingRepo{byClient: []*domain.Booking{
		testBooking(domain.StatusPending),
		testBooking(domain.StatusCancelled),
	}}
	svc := NewService(repo, nopLogger{})

	t.Run("all statuses by default", func(t *testing.T) {
		resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: 42})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("filtered by status", func(t *testing.T) {
		status := "cancelled"
		resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: 42, Status: &status})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "cancelled", resp.Bookings[0].Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		status := "paused"
		_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: 42, Status: &status})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	})

	t.Run("confirmed to completed", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "completed"})
		assert.NoError(t, err)
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "completed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Nil(t, repo.updatedStatus)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(domain.StatusCompleted)}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cancellation is not a status update", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "cancelled"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Nil(t, repo.updatedStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "archived"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
