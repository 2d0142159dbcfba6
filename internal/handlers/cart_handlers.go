package handlers

import (
	"errors"
	"net/http"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/services"
	"kushi_services_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler holds the cart service.
type CartHandler struct {
	cartService services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cs services.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

// GetCart returns the stored cart plus its server-side quote.
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.cartService.GetCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			// A missing cart is an empty cart, not an error the client
			// should have to handle.
			c.JSON(http.StatusOK, gin.H{
				"cart":  models.Cart{ID: c.Param("id"), Items: []models.CartItem{}},
				"quote": gin.H{"subtotal": 0, "tax": 0, "total": 0, "savings": 0},
			})
			return
		}
		utils.LogError(err, "GetCart: Error from cartService.GetCart")
		if errors.Is(err, services.ErrCartValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch cart.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// PutCart replaces the stored cart with the submitted one.
func (h *CartHandler) PutCart(c *gin.Context) {
	var req struct {
		Items []models.CartItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "PutCart: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	var userID *int64
	if id, exists := c.Get("userID"); exists {
		uid := id.(int64)
		userID = &uid
	}

	view, err := h.cartService.PutCart(c.Request.Context(), c.Param("id"), userID, req.Items)
	if err != nil {
		utils.LogError(err, "PutCart: Error from cartService.PutCart")
		if errors.Is(err, services.ErrCartValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save cart.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClearCart deletes the stored cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.ClearCart(c.Request.Context(), c.Param("id")); err != nil {
		utils.LogError(err, "ClearCart: Error from cartService.ClearCart")
		if errors.Is(err, services.ErrCartValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to clear cart.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
