package handler

import (
	"errors"
	"net/http"

	"court_booking/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminHandler handles the public user listing and the admin-only endpoints
// consumed by the dashboard.
type AdminHandler struct {
	service service.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

// ListUsersPublic returns every user with the password hash excluded
func (h *AdminHandler) ListUsersPublic(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Error listing users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Ping is the admin authorization probe. Reaching it at all means the JWT
// and role middlewares have already admitted the caller.
func (h *AdminHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Error listing users for admin")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Error listing bookings for admin")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).WithField("user_id", id).Error("Error deleting user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// RegisterAdminRoutes registers the public user listing and the
// admin-guarded routes
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	rg.GET("/users", h.ListUsersPublic)

	adminRoutes := rg.Group("/admin")
	adminRoutes.Use(authMW)  // Requires authentication
	adminRoutes.Use(adminMW) // Requires admin role
	{
		adminRoutes.GET("/ping", h.Ping)
		adminRoutes.GET("/users", h.ListUsers)
		adminRoutes.GET("/bookings", h.ListBookings)
		adminRoutes.DELETE("/users/:id", h.DeleteUser)
	}
}
