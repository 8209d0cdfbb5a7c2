package handler

import (
	"errors"
	"net/http"

	"court_booking/internal/middleware"
	"court_booking/internal/model"
	"court_booking/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// BookingHandler handles booking requests from authenticated users
type BookingHandler struct {
	service service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(s service.BookingService) *BookingHandler {
	return &BookingHandler{service: s}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, court and a valid hour are required"})
		return
	}

	userID := c.GetString(middleware.AuthUserKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).Error("Error creating booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// RegisterBookingRoutes registers booking routes requiring authentication
func (h *BookingHandler) RegisterBookingRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	bookingRoutes := rg.Group("/bookings")
	bookingRoutes.Use(authMW)
	{
		bookingRoutes.POST("", h.CreateBooking)
	}
}
