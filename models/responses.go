package models

// MutationResponse is returned by record create, update and delete routes.
// Count is set only by delete-all.
type MutationResponse struct {
	Success bool   `json:"success"`
	ID      ID     `json:"id,omitempty"`
	Count   *int64 `json:"count,omitempty"`
}

// ErrorResponse is the body of every non-2xx response of the record service.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Page is a paginated listing envelope.
type Page[T any] struct {
	Data     []T `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}
