package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"kushi_services_backend/internal/services"
	"kushi_services_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler holds the customer service.
type CustomerHandler struct {
	customerService services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// GetCustomers returns one row per customer email with booking totals.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	filter := c.DefaultQuery("filter", services.CustomerFilterAll)
	query := c.Query("search")

	customers, err := h.customerService.ListCustomers(filter, query)
	if err != nil {
		utils.LogError(err, "GetCustomers: Error from customerService.ListCustomers")
		if errors.Is(err, services.ErrCustomerFilterInvalid) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch customers.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers, "total": len(customers)})
}

// BlockCustomer marks a registered customer account as blocked.
func (h *CustomerHandler) BlockCustomer(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := h.customerService.BlockCustomer(userID); err != nil {
		utils.LogError(err, "BlockCustomer: Error from customerService.BlockCustomer")
		respondCustomerActionError(c, err, "Failed to block customer.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer blocked"})
}

// AddReward credits loyalty points to a customer account.
func (h *CustomerHandler) AddReward(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := h.customerService.AddReward(userID); err != nil {
		utils.LogError(err, "AddReward: Error from customerService.AddReward")
		respondCustomerActionError(c, err, "Failed to add reward.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reward added"})
}

// AddCoupon increments the coupon count on a customer account.
func (h *CustomerHandler) AddCoupon(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := h.customerService.AddCoupon(userID); err != nil {
		utils.LogError(err, "AddCoupon: Error from customerService.AddCoupon")
		respondCustomerActionError(c, err, "Failed to add coupon.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon added"})
}

func parseUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return 0, false
	}
	return userID, true
}

func respondCustomerActionError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrCustomerNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		return
	}
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallback, "Internal error"))
}
