package dto

import "gorm.io/datatypes"

// ContactRequest is the body of addContact and updateContact. Followups is an
// opaque payload stored as-is.
type ContactRequest struct {
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Subject        string         `json:"subject"`
	Message        string         `json:"message"`
	IsContactClose *bool          `json:"isContactClose"`
	UserID         *string        `json:"userId"`
	Followups      datatypes.JSON `json:"followups"`
}
