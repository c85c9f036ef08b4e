package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Staff is a clinic staff member. Address and Occupation are opaque payloads
// supplied by the caller; the only documented key is "label", which search and
// export match against. CenterID and UserID are loose foreign identifiers with
// no referential integrity enforced here.
type Staff struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName    string         `gorm:"size:255;not null" json:"firstName"`
	LastName     string         `gorm:"size:255;not null" json:"lastName"`
	Gender       string         `gorm:"size:16;not null" json:"gender"`
	PhoneNo      string         `gorm:"size:32;not null" json:"phoneNo"`
	AlterPhoneNo string         `gorm:"size:32" json:"alterphoneNo"`
	Email        string         `gorm:"size:255" json:"email"`
	ClinicTime   string         `gorm:"size:255" json:"clinicTime"`
	Address      datatypes.JSON `gorm:"type:jsonb" json:"address"`
	Occupation   datatypes.JSON `gorm:"type:jsonb" json:"occupation"`
	State        string         `gorm:"size:255" json:"state"`
	City         string         `gorm:"size:255" json:"city"`
	InIR         bool           `gorm:"column:in_ir;default:false" json:"inIR"`
	CenterID     *string        `gorm:"size:64;index" json:"centerId"`
	UserID       *string        `gorm:"size:64" json:"userId"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// PayloadLabel extracts the conventional "label" key from an opaque payload.
// Returns "" when the payload is empty, not an object, or has no label.
func PayloadLabel(payload datatypes.JSON) string {
	if len(payload) == 0 {
		return ""
	}
	var m map[string]interface{}
	if err := json.Unmarshal(payload, &m); err != nil {
		return ""
	}
	if label, ok := m["label"].(string); ok {
		return label
	}
	return ""
}
