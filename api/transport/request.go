package transport

import "encoding/json"

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateTaskRequest keeps user_id optional so a missing field can be told
// apart from an explicit value.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	UserID      *int64  `json:"user_id"`
}

// UpdateTaskStatusRequest holds is_completed undecoded so that only a JSON
// boolean is accepted.
type UpdateTaskStatusRequest struct {
	IsCompleted json.RawMessage `json:"is_completed"`
}

// Completed reports the requested flag; ok is false unless the field is a
// literal true or false.
func (r UpdateTaskStatusRequest) Completed() (value bool, ok bool) {
	switch string(r.IsCompleted) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
