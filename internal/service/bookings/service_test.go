package bookings

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

var createdAt = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func sampleBookings() []*domain.Booking {
	checkout := createdAt.Add(3 * time.Hour)
	return []*domain.Booking{
		{ID: "BK-000000000002", SlotID: "P002", Zone: "Zone-A", DurationHours: 2, Cost: 150, Status: domain.StatusActive, CreatedAt: createdAt.Add(time.Hour)},
		{ID: "BK-000000000001", SlotID: "P001", Zone: "Zone-A", DurationHours: 3, Cost: 150, Status: domain.StatusCompleted, CreatedAt: createdAt, CheckoutTime: &checkout},
	}
}

func TestGetByID(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewService(repo, logger.NewNop())

	repo.On("GetByID", mock.Anything, "BK-000000000001").Return(sampleBookings()[1], nil)

	resp, err := svc.GetByID(context.Background(), "BK-000000000001")
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "P001", resp.SlotID)
	require.NotNil(t, resp.CheckoutTime)
	assert.Equal(t, createdAt.Add(3*time.Hour), *resp.CheckoutTime)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewService(repo, logger.NewNop())

	repo.On("GetByID", mock.Anything, "BK-missing").Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.GetByID(context.Background(), "BK-missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_RepositoryError(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewService(repo, logger.NewNop())

	repo.On("GetByID", mock.Anything, "BK-1").Return(nil, sql.ErrConnDone)

	_, err := svc.GetByID(context.Background(), "BK-1")
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestList_WithSummary(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewService(repo, logger.NewNop())

	repo.On("List", mock.Anything, (*domain.BookingStatus)(nil)).Return(sampleBookings(), nil)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "BK-000000000002", resp.Bookings[0].ID)
	assert.Equal(t, 1, resp.Summary.Active)
	assert.Equal(t, 1, resp.Summary.Completed)
	assert.Equal(t, 300.0, resp.Summary.TotalCost)
}

func TestList_StatusFilter(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewService(repo, logger.NewNop())

	active := domain.StatusActive
	repo.On("List", mock.Anything, &active).Return(sampleBookings()[:1], nil)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("active")})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestList_InvalidStatus(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewService(repo, logger.NewNop())

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("cancelled")})
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestList_Empty(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewService(repo, logger.NewNop())

	repo.On("List", mock.Anything, (*domain.BookingStatus)(nil)).Return([]*domain.Booking{}, nil)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}
