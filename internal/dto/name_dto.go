package dto

// NameRequest is the body for the single-field Diagnosis and Occupation CRUD.
type NameRequest struct {
	Name string `json:"name"`
}
