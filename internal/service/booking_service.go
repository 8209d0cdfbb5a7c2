package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"court_booking/internal/model"
	"court_booking/internal/repository"

	"github.com/google/uuid"
)

var ErrSlotTaken = errors.New("this court slot is already booked")

// BookingService provides booking operations for authenticated users
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req model.CreateBookingRequest) (*model.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo repository.BookingRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo}
}

// CreateBooking reserves a one-hour court slot for the given user. Slot
// conflicts are detected by the store's unique index, so two racing requests
// for the same slot resolve without a read-then-write race.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req model.CreateBookingRequest) (*model.Booking, error) {
	now := time.Now()
	booking := &model.Booking{
		ID:        uuid.NewString(),
		UserID:    &userID,
		Date:      req.Date,
		Court:     req.Court,
		Hour:      req.Hour,
		Status:    model.BookingStatusBooked,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create booking in repository: %w", err)
	}
	return booking, nil
}
