package model

import (
	"fmt"
	"time"
)

const (
	BookingStatusBooked   = "booked"
	BookingStatusArrived  = "arrived"
	BookingStatusCanceled = "canceled"
)

// Booking represents a one-hour court reservation. UserName is denormalized
// from the users table at read time; it may be empty when the owning user
// has been deleted.
type Booking struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	UserName  string    `json:"user_name,omitempty"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Court     string    `json:"court"`
	Hour      int       `json:"hour"` // start of the one-hour slot
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeWindow formats the fixed one-hour display window [Hour, Hour+1).
func (b Booking) TimeWindow() string {
	return fmt.Sprintf("%d:00 - %d:00", b.Hour, b.Hour+1)
}

// StatusLabel maps the booking status to its display label. An unset status
// renders as the placeholder.
func (b Booking) StatusLabel() string {
	switch b.Status {
	case BookingStatusBooked:
		return "booked"
	case BookingStatusArrived:
		return "arrived"
	case BookingStatusCanceled:
		return "canceled"
	default:
		return "-"
	}
}

// CreateBookingRequest is the payload for creating a booking
type CreateBookingRequest struct {
	Date  string `json:"date" binding:"required"`
	Court string `json:"court" binding:"required"`
	Hour  int    `json:"hour" binding:"min=0,max=23"`
}
