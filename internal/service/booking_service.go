package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nattcha/hotel-booking-service/internal/availability"
	"github.com/nattcha/hotel-booking-service/internal/models"
	"github.com/nattcha/hotel-booking-service/internal/repository"
	"github.com/nattcha/hotel-booking-service/pkg/rabbitmq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound     = errors.New("no room found with that ID")
	ErrBookingNotFound  = errors.New("no booking found with that ID")
	ErrInvalidDateRange = errors.New("check-in date must be before check-out date")
	ErrRoomUnavailable  = errors.New("room is not available for the selected dates")
	ErrForbidden        = errors.New("you do not have permission to access this booking")
	ErrAlreadyCancelled = errors.New("this booking is already cancelled")
)

type CreateBookingInput struct {
	RoomID   uint
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Contact  models.ContactInfo

	// Price, when supplied by the caller, is stored verbatim; the engine
	// never overrides an explicit breakdown.
	Price *models.PriceBreakdown
}

type BookingService interface {
	Create(ctx context.Context, userID uint, in CreateBookingInput) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID, userID uint) (*models.Booking, error)
	Get(ctx context.Context, bookingID, userID uint) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Booking, error)
}

type bookingService struct {
	bookings  repository.BookingRepository
	rooms     repository.RoomRepository
	publisher *rabbitmq.Publisher
	taxRate   float64
}

func NewBookingService(bookings repository.BookingRepository, rooms repository.RoomRepository, publisher *rabbitmq.Publisher, taxRate float64) BookingService {
	return &bookingService{
		bookings:  bookings,
		rooms:     rooms,
		publisher: publisher,
		taxRate:   taxRate,
	}
}

// Create runs the whole check-then-insert sequence inside one transaction
// with a row-level lock on the room, so two concurrent requests for the same
// room cannot both pass the overlap check.
func (s *bookingService) Create(ctx context.Context, userID uint, in CreateBookingInput) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookings.Transaction(ctx, func(tx *gorm.DB) error {
		room, err := s.rooms.FindByIDForUpdate(ctx, tx, in.RoomID)
		if err != nil {
			return ErrRoomNotFound
		}

		if !in.CheckIn.Before(in.CheckOut) {
			return ErrInvalidDateRange
		}

		existing, err := s.bookings.FindOverlapping(ctx, tx, room.ID, in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}
		if availability.Conflicts(existing, in.CheckIn, in.CheckOut) {
			return ErrRoomUnavailable
		}

		price := in.Price
		if price == nil {
			nights := availability.Nights(in.CheckIn, in.CheckOut)
			p := availability.Price(room.Price, nights, s.taxRate)
			price = &p
		}

		booking := &models.Booking{
			Reference:   uuid.NewString(),
			UserID:      userID,
			RoomID:      room.ID,
			CheckIn:     in.CheckIn,
			CheckOut:    in.CheckOut,
			Guests:      in.Guests,
			Price:       *price,
			ContactInfo: datatypes.NewJSONType(in.Contact),
			Status:      models.StatusConfirmed,
		}
		if err := s.bookings.Create(ctx, tx, booking); err != nil {
			return err
		}

		booking.Room = room
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.RoutingKeyBookingCreated, result)
	}
	return result, nil
}

// Cancel transitions a confirmed booking to cancelled. The edge is one-way:
// a cancelled booking stays cancelled and a second cancel is an error.
func (s *bookingService) Cancel(ctx context.Context, bookingID, userID uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookings.Transaction(ctx, func(tx *gorm.DB) error {
		booking, err := s.bookings.FindByID(ctx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}

		if booking.UserID != userID {
			return ErrForbidden
		}
		if booking.Status == models.StatusCancelled {
			return ErrAlreadyCancelled
		}

		if err := s.bookings.UpdateStatus(ctx, tx, booking.ID, models.StatusCancelled); err != nil {
			return err
		}

		booking.Status = models.StatusCancelled
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.RoutingKeyBookingCancelled, result)
	}
	return result, nil
}

func (s *bookingService) Get(ctx context.Context, bookingID, userID uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	return booking, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.bookings.FindByUserID(ctx, userID)
}
