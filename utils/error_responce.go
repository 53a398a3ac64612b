package utils

// ErrorResponse is the soft-failure envelope. Success is always false so the
// body reads as {"success": false, "message": ...}; recoverable rejections are
// returned as data, never thrown.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
