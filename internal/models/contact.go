package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Contact is a contact/appointment submission. IsContactClose is a pointer so
// a submission that omits the flag is stored as NULL rather than false.
// Followups is an opaque payload owned by the caller.
type Contact struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Phone          string         `gorm:"size:32;not null" json:"phone"`
	Email          string         `gorm:"size:255" json:"email"`
	Subject        string         `gorm:"type:text" json:"subject"`
	Message        string         `gorm:"type:text" json:"message"`
	IsContactClose *bool          `json:"isContactClose"`
	UserID         *string        `gorm:"size:64;index" json:"userId"`
	Followups      datatypes.JSON `gorm:"type:jsonb" json:"followups"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
