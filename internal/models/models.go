package models

import (
	"errors"
	"time"
)

// ErrTaskNotFound is returned when an operation targets a task id that does
// not exist in the task collection.
var ErrTaskNotFound = errors.New("task not found")

// Status is a task's workflow stage. Each board column is bound to exactly
// one status value.
type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
	StatusPending    Status = "pending"
	StatusCompleted  Status = "completed"
	StatusArchived   Status = "archived"
)

// Priority of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task represents a single task
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date"` // ISO string, the task's scheduled day
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	CategoryID  string     `json:"categoryId,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// EffectiveDueDate resolves the task's scheduled day: the materialized
// DueDate when present, otherwise the parsed Date string. ok is false when
// neither is usable; such tasks are excluded from date-bucketed views.
func (t *Task) EffectiveDueDate() (time.Time, bool) {
	if t.DueDate != nil {
		return *t.DueDate, true
	}
	return ParseDate(t.Date)
}

// ParseDate parses an ISO-8601 date value as stored in the task documents.
// Accepts full timestamps and bare dates.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Category is a user-defined grouping a task can reference by id. A category
// may be bound to a column, which forces the status of tasks assigned to it.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Icon     string `json:"icon,omitempty"`
	ColumnID string `json:"columnId,omitempty"`
}

// Label is a purely descriptive tag tasks can reference by id
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Column is a status bucket on the board. TaskIDs is the authoritative
// ordering of tasks within that status.
type Column struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Status  Status   `json:"status"`
	TaskIDs []string `json:"taskIds"`
	Color   string   `json:"color,omitempty"`
}

// Board holds the columns, categories and labels for the installation
type Board struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Columns    []Column   `json:"columns"`
	Categories []Category `json:"categories"`
	Labels     []Label    `json:"labels"`
}

// ColumnByID returns the column with the given id, or nil
func (b *Board) ColumnByID(id string) *Column {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i]
		}
	}
	return nil
}

// ColumnByStatus returns the first column bound to the given status, or nil
func (b *Board) ColumnByStatus(status Status) *Column {
	for i := range b.Columns {
		if b.Columns[i].Status == status {
			return &b.Columns[i]
		}
	}
	return nil
}

// CategoryByID returns the category with the given id, or nil
func (b *Board) CategoryByID(id string) *Category {
	if id == "" {
		return nil
	}
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			return &b.Categories[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	out := &Board{
		ID:         b.ID,
		Name:       b.Name,
		Columns:    make([]Column, len(b.Columns)),
		Categories: append([]Category(nil), b.Categories...),
		Labels:     append([]Label(nil), b.Labels...),
	}
	for i, col := range b.Columns {
		out.Columns[i] = col
		out.Columns[i].TaskIDs = append([]string(nil), col.TaskIDs...)
	}
	return out
}

// DefaultBoard returns the board created on first run, before any board
// document has been persisted. Column ids match their status values.
func DefaultBoard() *Board {
	return &Board{
		ID:   "default",
		Name: "Main Board",
		Columns: []Column{
			{ID: "backlog", Title: "Backlog", Status: StatusBacklog, TaskIDs: []string{}, Color: "#E5E7EB"},
			{ID: "todo", Title: "To Do", Status: StatusTodo, TaskIDs: []string{}, Color: "#93C5FD"},
			{ID: "in_progress", Title: "In Progress", Status: StatusInProgress, TaskIDs: []string{}, Color: "#FCD34D"},
			{ID: "review", Title: "Review", Status: StatusReview, TaskIDs: []string{}, Color: "#F9A8D4"},
			{ID: "completed", Title: "Completed", Status: StatusCompleted, TaskIDs: []string{}, Color: "#86EFAC"},
		},
		Categories: []Category{},
		Labels:     []Label{},
	}
}
