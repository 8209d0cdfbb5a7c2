package repository

import (
	"context"
	"errors"
	"fmt"

	"court_booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateSlot is returned by Create when the store's unique index on
// (date, court, hour) rejects the insert. As with emails, the index is the
// final authority on slot conflicts.
var ErrDuplicateSlot = errors.New("court slot already booked")

// BookingRepository defines operations for booking data
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindAll(ctx context.Context) ([]model.Booking, error)
}

type bookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts a new booking into the database
func (r *bookingRepository) Create(ctx context.Context, b *model.Booking) error {
	sql := `INSERT INTO bookings (id, user_id, date, court, hour, status, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, b.ID, b.UserID, b.Date, b.Court, b.Hour, b.Status, b.CreatedAt, b.UpdatedAt).
		Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// FindByID retrieves a booking by its ID
func (r *bookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	b := &model.Booking{}
	var userName *string
	sql := `SELECT b.id, b.user_id, u.name, b.date, b.court, b.hour, b.status, b.created_at, b.updated_at
            FROM bookings b LEFT JOIN users u ON b.user_id = u.id WHERE b.id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&b.ID, &b.UserID, &userName, &b.Date, &b.Court, &b.Hour, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	if userName != nil {
		b.UserName = *userName
	}
	return b, nil
}

// FindAll retrieves all bookings with the owning user's name denormalized
// in. Bookings whose user has been deleted come back with an empty name.
func (r *bookingRepository) FindAll(ctx context.Context) ([]model.Booking, error) {
	sql := `SELECT b.id, b.user_id, u.name, b.date, b.court, b.hour, b.status, b.created_at, b.updated_at
            FROM bookings b LEFT JOIN users u ON b.user_id = u.id
            ORDER BY b.date, b.hour, b.court`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		var userName *string
		if err := rows.Scan(&b.ID, &b.UserID, &userName, &b.Date, &b.Court, &b.Hour, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		if userName != nil {
			b.UserName = *userName
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}
	return bookings, nil
}
