package dto

import "gorm.io/datatypes"

// StaffRequest is the body of addStaff and updateStaff.
//
// Update semantics are deliberately asymmetric (see StaffService.Update):
// string fields only overwrite when non-empty, InIR overwrites whenever the
// key is present (hence the pointer), and CenterID is always recomputed with
// "" coerced to NULL.
type StaffRequest struct {
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Gender       string         `json:"gender"`
	PhoneNo      string         `json:"phoneNo"`
	AlterPhoneNo string         `json:"alterphoneNo"`
	Email        string         `json:"email"`
	ClinicTime   string         `json:"clinicTime"`
	Address      datatypes.JSON `json:"address"`
	Occupation   datatypes.JSON `json:"occupation"`
	State        string         `json:"state"`
	City         string         `json:"city"`
	InIR         *bool          `json:"inIR"`
	CenterID     string         `json:"centerId"`
	UserID       string         `json:"userId"`
}

// SearchStaffRequest is the body of searchStaff.
type SearchStaffRequest struct {
	Search string `json:"search"`
}
