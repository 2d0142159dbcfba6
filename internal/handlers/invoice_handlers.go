package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/services"
	"kushi_services_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler holds the invoice service.
type InvoiceHandler struct {
	invoiceService services.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(is services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: is}
}

func invoiceFiltersFromQuery(c *gin.Context) models.InvoiceFilters {
	filters := models.InvoiceFilters{Period: c.DefaultQuery("period", models.InvoicePeriodAll)}
	if search := c.Query("search"); search != "" {
		filters.Search = &search
	}
	if date := c.Query("date"); date != "" {
		filters.CustomDate = &date
	}
	if month := c.Query("month"); month != "" {
		filters.CustomMonth = &month
	}
	return filters
}

// GetInvoices handles the invoice list with period filter, search and totals.
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	result, err := h.invoiceService.ListInvoices(invoiceFiltersFromQuery(c))
	if err != nil {
		utils.LogError(err, "GetInvoices: Error from invoiceService.ListInvoices")
		if errors.Is(err, services.ErrInvoicePeriodInvalid) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch invoices.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// DownloadInvoicePDF streams a single invoice as a PDF attachment.
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	idStr := c.Param("id")
	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid invoice ID format.", err.Error()))
		return
	}

	pdf, err := h.invoiceService.GeneratePDF(bookingID)
	if err != nil {
		utils.LogError(err, "DownloadInvoicePDF: Error from invoiceService.GeneratePDF for ID "+idStr)
		if errors.Is(err, services.ErrInvoiceNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Invoice not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate invoice PDF.", "Internal error"))
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%d.pdf"`, bookingID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ExportInvoicesCSV streams the filtered invoice list as a CSV attachment.
func (h *InvoiceHandler) ExportInvoicesCSV(c *gin.Context) {
	data, err := h.invoiceService.ExportCSV(invoiceFiltersFromQuery(c))
	if err != nil {
		utils.LogError(err, "ExportInvoicesCSV: Error from invoiceService.ExportCSV")
		if errors.Is(err, services.ErrInvoicePeriodInvalid) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to export invoices.", "Internal error"))
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoices.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
