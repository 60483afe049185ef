package models

import "net/url"

// Task statuses accepted by the remote API.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task priorities accepted by the remote API.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a single task owned by the current user.
type Task struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate,omitempty"`
	User        string   `json:"user"`
	Tags        []string `json:"tags"`
	Completed   bool     `json:"completed"`
	CompletedAt string   `json:"completedAt,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// CreateTaskRequest is the body for POST /tasks. Status defaults to "pending"
// and priority to "medium" on the server when left empty.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateTaskRequest is the body for PUT /tasks/{id}.
type UpdateTaskRequest struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// TaskPage is the payload of GET /tasks.
type TaskPage struct {
	Count int    `json:"count"`
	Tasks []Task `json:"tasks"`
}

// TaskStats is the payload of GET /tasks/stats.
type TaskStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	InProgress     int `json:"inProgress"`
	Completed      int `json:"completed"`
	HighPriority   int `json:"highPriority"`
	MediumPriority int `json:"mediumPriority"`
	LowPriority    int `json:"lowPriority"`
}

// QueryParams is the filter projection sent verbatim to GET /tasks.
// The server does all filtering; the client never duplicates it locally.
type QueryParams struct {
	Status   string
	Priority string
	Search   string
	SortBy   string
	Order    string
}

// Values encodes the params as a query string, omitting empty fields.
func (p QueryParams) Values() url.Values {
	v := url.Values{}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.Priority != "" {
		v.Set("priority", p.Priority)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.SortBy != "" {
		v.Set("sortBy", p.SortBy)
	}
	if p.Order != "" {
		v.Set("order", p.Order)
	}
	return v
}
