package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"kushi_services_backend/internal/services"
	"kushi_services_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler holds the booking service.
type BookingHandler struct {
	bookingService services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// CreateBooking handles the creation of a new booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateBooking: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	// A logged-in customer owns the booking regardless of what the payload says.
	if userID, exists := c.Get("userID"); exists {
		id := userID.(int64)
		req.UserID = &id
	}

	booking, err := h.bookingService.CreateBooking(req)
	if err != nil {
		utils.LogError(err, "CreateBooking: Error from bookingService.CreateBooking")
		if errors.Is(err, services.ErrServiceForBookingGone) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Selected service is unavailable.", err.Error()))
		} else if errors.Is(err, services.ErrBookingValidation) || errors.Is(err, services.ErrInvalidBookingSchedule) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBookings handles the admin list view with status filter, search and
// pagination. Filtering and sorting happen before the page is cut, so the
// total always refers to the filtered set.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	query := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	result, err := h.bookingService.ListBookings(status, query)
	if err != nil {
		utils.LogError(err, "GetBookings: Error from bookingService.ListBookings")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch bookings.", "Internal error"))
		return
	}

	start := (page - 1) * pageSize
	if start > len(result.Bookings) {
		start = len(result.Bookings)
	}
	end := start + pageSize
	if end > len(result.Bookings) {
		end = len(result.Bookings)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      result.Bookings[start:end],
		"total":     result.Total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetMyOrders returns the order history of the authenticated customer.
func (h *BookingHandler) GetMyOrders(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}

	orders, err := h.bookingService.ListOrdersForUser(userID.(int64))
	if err != nil {
		utils.LogError(err, "GetMyOrders: Error from bookingService.ListOrdersForUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch orders.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders, "total": len(orders)})
}

// GetBookingByID handles fetching a single booking by ID.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	idStr := c.Param("id")
	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking ID format.", err.Error()))
		return
	}

	booking, err := h.bookingService.GetBookingByID(bookingID)
	if err != nil {
		utils.LogError(err, "GetBookingByID: Error from bookingService.GetBookingByID for ID "+idStr)
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus handles pending/confirmed/completed/cancelled moves.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	idStr := c.Param("id")
	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking ID format.", err.Error()))
		return
	}

	var req services.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateBookingStatus: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	booking, err := h.bookingService.UpdateStatus(bookingID, req.Status)
	if err != nil {
		utils.LogError(err, "UpdateBookingStatus: Error from bookingService.UpdateStatus for ID "+idStr)
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found.", err.Error()))
		} else if errors.Is(err, services.ErrInvalidStatusChange) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Status transition not allowed.", err.Error()))
		} else if errors.Is(err, services.ErrBookingValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update booking status.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking handles deleting a booking.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	idStr := c.Param("id")
	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking ID format.", err.Error()))
		return
	}

	if err := h.bookingService.DeleteBooking(bookingID); err != nil {
		utils.LogError(err, "DeleteBooking: Error from bookingService.DeleteBooking for ID "+idStr)
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
