package models

import "time"

// GalleryImage is the stored metadata for one uploaded gallery photo.
type GalleryImage struct {
	ID        string    `json:"id" db:"id"` // uuid
	Title     string    `json:"title" db:"title"`
	Category  *string   `json:"category,omitempty" db:"category"`
	Path      string    `json:"path" db:"path"`
	ThumbPath string    `json:"thumb_path" db:"thumb_path"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
