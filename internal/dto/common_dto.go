package dto

// ErrorResponse is the uniform failure envelope for every JSON endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Pagination reports paging metadata computed from the full matching set.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
