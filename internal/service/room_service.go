package service

import (
	"context"
	"time"

	"github.com/nattcha/hotel-booking-service/internal/availability"
	"github.com/nattcha/hotel-booking-service/internal/models"
	"github.com/nattcha/hotel-booking-service/internal/repository"
)

type RoomService interface {
	ListRooms(ctx context.Context, q repository.RoomQuery) ([]models.Room, error)
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error)
}

type roomService struct {
	rooms    repository.RoomRepository
	bookings repository.BookingRepository
}

func NewRoomService(rooms repository.RoomRepository, bookings repository.BookingRepository) RoomService {
	return &roomService{rooms: rooms, bookings: bookings}
}

func (s *roomService) ListRooms(ctx context.Context, q repository.RoomQuery) ([]models.Room, error) {
	return s.rooms.FindAll(ctx, q)
}

func (s *roomService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// CheckAvailability is a read-only probe; unlike Create it takes no lock, so
// the answer can be stale by the time a booking request lands.
func (s *roomService) CheckAvailability(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, ErrInvalidDateRange
	}

	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		return false, ErrRoomNotFound
	}

	existing, err := s.bookings.FindOverlapping(ctx, nil, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !availability.Conflicts(existing, checkIn, checkOut), nil
}
