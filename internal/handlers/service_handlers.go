package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/services"
	"kushi_services_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler holds the catalog service.
type ServiceHandler struct {
	catalogService services.CatalogService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(cs services.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: cs}
}

// CreateService handles adding a catalog entry.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req services.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateService: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	service, err := h.catalogService.CreateService(req)
	if err != nil {
		utils.LogError(err, "CreateService: Error from catalogService.CreateService")
		if errors.Is(err, services.ErrServiceValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create service.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, service)
}

// GetServices handles the public catalog listing with category and search
// filters. Customers only see active services unless include_inactive is set.
func (h *ServiceHandler) GetServices(c *gin.Context) {
	filters := models.ServiceFilters{}
	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}
	if search := c.Query("search"); search != "" {
		filters.Search = &search
	}
	if c.Query("include_inactive") != "true" {
		filters.ActiveOnly = true
	}

	list, err := h.catalogService.GetServices(filters)
	if err != nil {
		utils.LogError(err, "GetServices: Error from catalogService.GetServices")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch services.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list, "total": len(list)})
}

// GetServiceByID handles fetching a single catalog entry.
func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	id, ok := parseServiceID(c)
	if !ok {
		return
	}

	service, err := h.catalogService.GetServiceByID(id)
	if err != nil {
		utils.LogError(err, "GetServiceByID: Error from catalogService.GetServiceByID")
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch service.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, service)
}

// UpdateService handles editing a catalog entry.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := parseServiceID(c)
	if !ok {
		return
	}

	var req services.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateService: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	service, err := h.catalogService.UpdateService(id, req)
	if err != nil {
		utils.LogError(err, "UpdateService: Error from catalogService.UpdateService")
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrServiceValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update service.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, service)
}

// SetServiceAvailability toggles whether a service can be booked.
func (h *ServiceHandler) SetServiceAvailability(c *gin.Context) {
	id, ok := parseServiceID(c)
	if !ok {
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	service, err := h.catalogService.SetAvailability(id, *req.Active)
	if err != nil {
		utils.LogError(err, "SetServiceAvailability: Error from catalogService.SetAvailability")
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update availability.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService handles removing a catalog entry.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, ok := parseServiceID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(id); err != nil {
		utils.LogError(err, "DeleteService: Error from catalogService.DeleteService")
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Service not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete service.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

func parseServiceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid service ID format.", err.Error()))
		return 0, false
	}
	return id, true
}
