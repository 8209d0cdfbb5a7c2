package service

import (
	"context"
	"fmt"

	"court_booking/internal/model"
	"court_booking/internal/repository"
)

// AdminService defines operations available to administrators
type AdminService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
	DeleteUser(ctx context.Context, id string) error
}

type adminService struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(userRepo repository.UserRepository, bookingRepo repository.BookingRepository) AdminService {
	return &adminService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *adminService) ListBookings(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// DeleteUser removes a user by id. Bookings keep their row (the foreign key
// sets user_id to NULL), so a stale denormalized name on already-fetched
// views is expected until the next full reload.
func (s *adminService) DeleteUser(ctx context.Context, id string) error {
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find user for deletion: %w", err)
	}
	if existing == nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user in repo: %w", err)
	}
	return nil
}
