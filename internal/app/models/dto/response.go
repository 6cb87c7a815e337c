package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the reported-error payload. It is sent with HTTP 200 for
// data-layer failures and with 400 for malformed form input.
type ErrorResponse struct {
	Error string `json:"error"`
}
