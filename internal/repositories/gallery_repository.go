package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kushi_services_backend/internal/models"
)

// GalleryRepository stores metadata for uploaded gallery images.
type GalleryRepository interface {
	CreateImage(executor SQLExecutor, image *models.GalleryImage) error
	GetImages(category *string) ([]models.GalleryImage, error)
	GetImageByID(id string) (*models.GalleryImage, error)
	DeleteImage(executor SQLExecutor, id string) error
}

type galleryRepository struct {
	db *sql.DB
}

// NewGalleryRepository creates a new instance of GalleryRepository.
func NewGalleryRepository(db *sql.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func scanGalleryImage(row scanner) (*models.GalleryImage, error) {
	var img models.GalleryImage
	var category sql.NullString
	err := row.Scan(&img.ID, &img.Title, &category, &img.Path, &img.ThumbPath, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning gallery image: %v", ErrDatabaseError, err)
	}
	if category.Valid {
		img.Category = &category.String
	}
	return &img, nil
}

func (r *galleryRepository) CreateImage(executor SQLExecutor, image *models.GalleryImage) error {
	image.CreatedAt = time.Now()
	_, err := executor.Exec(
		`INSERT INTO gallery_images (id, title, category, path, thumb_path, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		image.ID, image.Title, image.Category, image.Path, image.ThumbPath, image.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating gallery image: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *galleryRepository) GetImages(category *string) ([]models.GalleryImage, error) {
	query := `SELECT id, title, category, path, thumb_path, created_at FROM gallery_images`
	var args []interface{}
	if category != nil && *category != "" {
		query += " WHERE category = $1"
		args = append(args, *category)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying gallery images: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	images := []models.GalleryImage{}
	for rows.Next() {
		img, scanErr := scanGalleryImage(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		images = append(images, *img)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating gallery rows: %v", ErrDatabaseError, err)
	}
	return images, nil
}

func (r *galleryRepository) GetImageByID(id string) (*models.GalleryImage, error) {
	return scanGalleryImage(r.db.QueryRow(
		`SELECT id, title, category, path, thumb_path, created_at FROM gallery_images WHERE id = $1`, id))
}

func (r *galleryRepository) DeleteImage(executor SQLExecutor, id string) error {
	result, err := executor.Exec(`DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting gallery image %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
