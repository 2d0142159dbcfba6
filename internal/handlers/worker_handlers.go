package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"kushi_services_backend/internal/services"
	"kushi_services_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// WorkerHandler holds the worker service.
type WorkerHandler struct {
	workerService services.WorkerService
}

// NewWorkerHandler creates a new WorkerHandler.
func NewWorkerHandler(ws services.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerService: ws}
}

// CreateWorker handles adding a field worker.
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req services.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateWorker: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	worker, err := h.workerService.CreateWorker(req)
	if err != nil {
		utils.LogError(err, "CreateWorker: Error from workerService.CreateWorker")
		if errors.Is(err, services.ErrWorkerValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create worker.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, worker)
}

// GetWorkers lists workers, optionally only the active ones.
func (h *WorkerHandler) GetWorkers(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	workers, err := h.workerService.GetWorkers(activeOnly)
	if err != nil {
		utils.LogError(err, "GetWorkers: Error from workerService.GetWorkers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch workers.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": workers, "total": len(workers)})
}

// UpdateWorker handles editing a worker.
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id, ok := parseWorkerID(c)
	if !ok {
		return
	}

	var req services.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	worker, err := h.workerService.UpdateWorker(id, req)
	if err != nil {
		utils.LogError(err, "UpdateWorker: Error from workerService.UpdateWorker")
		if errors.Is(err, services.ErrWorkerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Worker not found.", err.Error()))
		} else if errors.Is(err, services.ErrWorkerValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update worker.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, worker)
}

// DeleteWorker handles removing a worker.
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	id, ok := parseWorkerID(c)
	if !ok {
		return
	}

	if err := h.workerService.DeleteWorker(id); err != nil {
		utils.LogError(err, "DeleteWorker: Error from workerService.DeleteWorker")
		if errors.Is(err, services.ErrWorkerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Worker not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete worker.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Worker deleted successfully"})
}

// AssignWorker pins a worker to a booking and marks the booking paid.
func (h *WorkerHandler) AssignWorker(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid booking ID format.", err.Error()))
		return
	}

	var req struct {
		WorkerID int64 `json:"worker_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.workerService.AssignToBooking(bookingID, req.WorkerID); err != nil {
		utils.LogError(err, "AssignWorker: Error from workerService.AssignToBooking")
		if errors.Is(err, services.ErrWorkerNotFound) || errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Worker or booking not found.", err.Error()))
		} else if errors.Is(err, services.ErrWorkerForBookingGone) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Worker is not available for assignment.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to assign worker.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Worker assigned"})
}

func parseWorkerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid worker ID format.", err.Error()))
		return 0, false
	}
	return id, true
}
