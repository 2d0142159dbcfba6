package handlers

import (
	"errors"
	"net/http"

	"kushi_services_backend/internal/services"
	"kushi_services_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Uploads above this size are rejected before decoding.
const maxUploadBytes = 10 << 20

// GalleryHandler holds the gallery service.
type GalleryHandler struct {
	galleryService services.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(gs services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: gs}
}

// UploadImage handles a multipart image upload with title and category fields.
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Image file is required.", err.Error()))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Image exceeds the 10MB upload limit.", ""))
		return
	}

	title := c.PostForm("title")
	var category *string
	if cat := c.PostForm("category"); cat != "" {
		category = &cat
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.LogError(err, "UploadImage: Failed to open multipart file")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to read upload.", "Internal error"))
		return
	}
	defer file.Close()

	image, err := h.galleryService.UploadImage(title, category, fileHeader.Filename, file)
	if err != nil {
		utils.LogError(err, "UploadImage: Error from galleryService.UploadImage")
		if errors.Is(err, services.ErrImageInvalid) || errors.Is(err, services.ErrImageUnsupported) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to upload image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, image)
}

// GetImages lists gallery images, optionally filtered by category.
func (h *GalleryHandler) GetImages(c *gin.Context) {
	var category *string
	if cat := c.Query("category"); cat != "" {
		category = &cat
	}

	images, err := h.galleryService.ListImages(category)
	if err != nil {
		utils.LogError(err, "GetImages: Error from galleryService.ListImages")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch gallery.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": images, "total": len(images)})
}

// DeleteImage removes a gallery image and its files.
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id := c.Param("id")
	if err := h.galleryService.DeleteImage(id); err != nil {
		utils.LogError(err, "DeleteImage: Error from galleryService.DeleteImage for ID "+id)
		if errors.Is(err, services.ErrImageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Image not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
