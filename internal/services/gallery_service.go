package services

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"kushi_services_backend/internal/models"
	"kushi_services_backend/internal/repositories"
	"kushi_services_backend/pkg/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var (
	ErrImageNotFound    = errors.New("gallery image not found")
	ErrImageInvalid     = errors.New("invalid gallery image upload")
	ErrImageUnsupported = errors.New("unsupported image format")
)

const thumbWidth = 400

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// --- GalleryService Interface ---
type GalleryService interface {
	UploadImage(title string, category *string, filename string, file io.Reader) (*models.GalleryImage, error)
	ListImages(category *string) ([]models.GalleryImage, error)
	DeleteImage(id string) error
}

type galleryService struct {
	galleryRepo repositories.GalleryRepository
	db          *sql.DB
	uploadDir   string
}

// NewGalleryService creates a new instance of GalleryService. Uploaded files
// and their thumbnails land under uploadDir.
func NewGalleryService(gr repositories.GalleryRepository, db *sql.DB, uploadDir string) GalleryService {
	return &galleryService{galleryRepo: gr, db: db, uploadDir: uploadDir}
}

// UploadImage saves the original file, renders a resized thumbnail next to it
// and records both paths. Files are keyed by a fresh UUID so uploads never
// collide on filename.
func (s *galleryService) UploadImage(title string, category *string, filename string, file io.Reader) (*models.GalleryImage, error) {
	if utils.IsEmpty(title) {
		return nil, fmt.Errorf("%w: title is required", ErrImageInvalid)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return nil, fmt.Errorf("%w: %q", ErrImageUnsupported, ext)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	id := uuid.NewString()
	origPath := filepath.Join(s.uploadDir, id+ext)
	thumbPath := filepath.Join(s.uploadDir, id+"_thumb"+ext)

	out, err := os.Create(origPath)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded image: %w", err)
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(origPath)
		return nil, fmt.Errorf("failed to write uploaded image: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(origPath)
		return nil, fmt.Errorf("failed to finish uploaded image: %w", err)
	}

	src, err := imaging.Open(origPath)
	if err != nil {
		os.Remove(origPath)
		return nil, fmt.Errorf("%w: %v", ErrImageInvalid, err)
	}
	thumb := imaging.Resize(src, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		os.Remove(origPath)
		return nil, fmt.Errorf("failed to save thumbnail: %w", err)
	}

	image := &models.GalleryImage{
		ID:        id,
		Title:     strings.TrimSpace(title),
		Category:  category,
		Path:      origPath,
		ThumbPath: thumbPath,
	}
	if err := s.galleryRepo.CreateImage(s.db, image); err != nil {
		os.Remove(origPath)
		os.Remove(thumbPath)
		return nil, fmt.Errorf("failed to record gallery image: %w", err)
	}
	return image, nil
}

func (s *galleryService) ListImages(category *string) ([]models.GalleryImage, error) {
	images, err := s.galleryRepo.GetImages(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

// DeleteImage removes the metadata row first, then best-effort removes the
// files. A missing file on disk is not an error.
func (s *galleryService) DeleteImage(id string) error {
	image, err := s.galleryRepo.GetImageByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrImageNotFound
		}
		return fmt.Errorf("failed to find gallery image: %w", err)
	}

	if err := s.galleryRepo.DeleteImage(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrImageNotFound
		}
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	if err := os.Remove(image.Path); err != nil && !os.IsNotExist(err) {
		utils.LogError(err, "DeleteImage: failed to remove image file")
	}
	if err := os.Remove(image.ThumbPath); err != nil && !os.IsNotExist(err) {
		utils.LogError(err, "DeleteImage: failed to remove thumbnail file")
	}
	return nil
}
