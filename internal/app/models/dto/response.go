package dto

// APIResponse is the standard envelope for API responses
type APIResponse struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// MessageResponse carries a human-readable result message
type MessageResponse struct {
	Message string `json:"message"`
}
