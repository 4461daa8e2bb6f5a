package transport

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse acknowledges operations that return no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database,omitempty"`
	CheckedAt string `json:"database_checked_at,omitempty"`
}

func NewError(code string, message string) ErrorResponse {
	return ErrorResponse{Error: message, Code: code}
}

func NewMessage(message string) MessageResponse {
	return MessageResponse{Message: message}
}
