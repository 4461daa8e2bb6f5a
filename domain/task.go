package domain

// Task represents a user-owned activity item.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"is_completed"`
	UserID      int64   `json:"user_id"`
}
