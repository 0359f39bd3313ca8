package service

import (
	"context"
	"testing"
	"time"

	"github.com/nattcha/hotel-booking-service/internal/models"
	"github.com/nattcha/hotel-booking-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock BookingRepository ---
//
// FindOverlapping mirrors the SQL predicate (room, status=confirmed,
// half-open range intersection) against an in-memory slice.

type mockBookingRepo struct {
	existing []models.Booking
	created  []*models.Booking
	updated  map[uint]models.BookingStatus

	findByIDFn func(ctx context.Context, id uint) (*models.Booking, error)
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{updated: map[uint]models.BookingStatus{}}
}

func (m *mockBookingRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	b.ID = uint(len(m.created) + 1)
	m.created = append(m.created, b)
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.existing {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) FindOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.existing {
		if b.RoomID != roomID || b.Status != models.StatusConfirmed {
			continue
		}
		if b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	m.updated[bookingID] = status
	return nil
}

// --- Mock RoomRepository ---

type mockRoomRepo struct {
	rooms map[uint]*models.Room
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	if room, ok := m.rooms[id]; ok {
		return room, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return m.FindByID(ctx, id)
}

func (m *mockRoomRepo) FindAll(ctx context.Context, q repository.RoomQuery) ([]models.Room, error) {
	return nil, nil
}

func (m *mockRoomRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.rooms)), nil
}

// --- Tests ---

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func testRoom() *models.Room {
	return &models.Room{ID: 1, Title: "Deluxe King Room", Price: 100, Capacity: 2, Available: true}
}

func newTestService(bookings *mockBookingRepo) BookingService {
	rooms := &mockRoomRepo{rooms: map[uint]*models.Room{1: testRoom()}}
	return NewBookingService(bookings, rooms, nil, 0.09)
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newMockBookingRepo()
	svc := newTestService(repo)

	booking, err := svc.Create(context.Background(), 7, CreateBookingInput{
		RoomID:   1,
		CheckIn:  day(1),
		CheckOut: day(3),
		Guests:   2,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Equal(t, uint(7), booking.UserID)
	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, 200.0, booking.Price.Room)
	assert.InDelta(t, 18.0, booking.Price.Tax, 1e-9)
	assert.InDelta(t, 218.0, booking.Price.Total, 1e-9)
	assert.Equal(t, booking.Price.Room+booking.Price.Tax, booking.Price.Total)
	assert.NotNil(t, booking.Room)
	assert.Equal(t, "Deluxe King Room", booking.Room.Title)
	assert.Len(t, repo.created, 1)
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	repo := newMockBookingRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), 7, CreateBookingInput{
		RoomID:   99,
		CheckIn:  day(1),
		CheckOut: day(3),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Empty(t, repo.created)
}

func TestCreateBooking_InvalidDateRange(t *testing.T) {
	repo := newMockBookingRepo()
	svc := newTestService(repo)

	// checkIn == checkOut is rejected before anything is persisted
	_, err := svc.Create(context.Background(), 7, CreateBookingInput{
		RoomID:   1,
		CheckIn:  day(3),
		CheckOut: day(3),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.Create(context.Background(), 7, CreateBookingInput{
		RoomID:   1,
		CheckIn:  day(5),
		CheckOut: day(3),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	assert.Empty(t, repo.created)
}

func TestCreateBooking_Conflict(t *testing.T) {
	repo := newMockBookingRepo()
	repo.existing = []models.Booking{
		{ID: 1, RoomID: 1, CheckIn: day(2), CheckOut: day(6), Status: models.StatusConfirmed},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), 7, CreateBookingInput{
		RoomID:   1,
		CheckIn:  day(4),
		CheckOut: day(8),
	})

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Empty(t, repo.created)
}

func TestCreateBooking_BackToBackSucceeds(t *testing.T) {
	repo := newMockBookingRepo()
	repo.existing = []models.Booking{
		{ID: 1, RoomID: 1, CheckIn: day(1), CheckOut: day(3), Status: models.StatusConfirmed},
	}
	svc := newTestService(repo)

	// checkout day of the existing booking is free for a new check-in
	booking, err := svc.Create(context.Background(), 7, CreateBookingInput{
		RoomID:   1,
		CheckIn:  day(3),
		CheckOut: day(5),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
}

func TestCreateBooking_CancelledDoesNotBlock(t *testing.T) {
	repo := newMockBookingRepo()
	repo.existing = []models.Booking{
		{ID: 1, RoomID: 1, CheckIn: day(1), CheckOut: day(10), Status: models.StatusCancelled},
	}
	svc := newTestService(repo)

	booking, err := svc.Create(context.Background(), 7, CreateBookingInput{
		RoomID:   1,
		CheckIn:  day(2),
		CheckOut: day(4),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
}

func TestCreateBooking_CallerSuppliedPrice(t *testing.T) {
	repo := newMockBookingRepo()
	svc := newTestService(repo)

	supplied := &models.PriceBreakdown{Room: 500, Tax: 45, Total: 545}
	booking, err := svc.Create(context.Background(), 7, CreateBookingInput{
		RoomID:   1,
		CheckIn:  day(1),
		CheckOut: day(3),
		Price:    supplied,
	})

	assert.NoError(t, err)
	assert.Equal(t, *supplied, booking.Price)
}

func TestCancelBooking_Success(t *testing.T) {
	repo := newMockBookingRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: 7, RoomID: 1, Status: models.StatusConfirmed}, nil
	}
	svc := newTestService(repo)

	booking, err := svc.Cancel(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, booking.Status)
	assert.Equal(t, models.StatusCancelled, repo.updated[1])
}

func TestCancelBooking_NotFound(t *testing.T) {
	repo := newMockBookingRepo()
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 42, 7)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBooking_NonOwnerForbidden(t *testing.T) {
	repo := newMockBookingRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: 7, Status: models.StatusConfirmed}, nil
	}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, 8)

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, repo.updated)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	repo := newMockBookingRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: 7, Status: models.StatusCancelled}, nil
	}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, 7)

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, repo.updated)
}

func TestGetBooking_OwnerOnly(t *testing.T) {
	repo := newMockBookingRepo()
	repo.findByIDFn = func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: 7, Status: models.StatusConfirmed}, nil
	}
	svc := newTestService(repo)

	booking, err := svc.Get(context.Background(), 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), booking.UserID)

	_, err = svc.Get(context.Background(), 1, 8)
	assert.ErrorIs(t, err, ErrForbidden)
}
