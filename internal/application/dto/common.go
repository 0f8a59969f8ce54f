package dto

// ErrorResponse HTTP error body with a stable machine-readable code.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
