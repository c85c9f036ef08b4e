package models

import (
	"time"

	"github.com/google/uuid"
)

// Author is a content author with an optionally embedded image.
// AuthorImage holds the compressed "data:image/jpeg;base64,..." payload and is
// only loaded on the raw image endpoint; list/get queries skip the column.
type Author struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Bio         string    `gorm:"type:text" json:"bio"`
	AuthorImage string    `gorm:"type:text" json:"authorImage,omitempty"`
	AuthorURL   string    `gorm:"type:text" json:"authorUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AuthorColumns are the columns fetched when the image payload is not needed.
var AuthorColumns = []string{"id", "name", "bio", "author_url", "created_at", "updated_at"}
