package model

// Task is the unit of work tracked by the service. The JSON tags are
// the wire surface; database columns are snake_case.
type Task struct {
	ID          int64  `json:"taskId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	ImageURL    string `json:"image_url"`
}

// TaskInput is the request body for create/update. Pointer fields so
// an absent key is distinguishable from a zero value.
type TaskInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Points      *int    `json:"points"`
	ImageURL    *string `json:"image_url"`
}

type User struct {
	ID       int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Progress is the optional side of the task/progress join. Every
// field is null when the task has no progress rows.
type Progress struct {
	ProgressID     *int64  `json:"progressId"`
	UserID         *int64  `json:"userId"`
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	CompletionDate *string `json:"completion_date"`
	Notes          *string `json:"notes"`
}

type TaskWithProgress struct {
	Task     Task     `json:"task"`
	Progress Progress `json:"progress"`
}
