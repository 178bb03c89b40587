package domain

// Page is the envelope every list endpoint of the scheduling API returns.
// TotalPages is whatever the server computed; it is never recalculated here.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
