package models

import "time"

// TaskDraft is the input to task creation. ID and timestamps are assigned
// by the persistence layer.
type TaskDraft struct {
	Title       string
	Description string
	Date        string
	DueDate     *time.Time
	Status      Status
	Priority    Priority
	CategoryID  string
	Labels      []string
}

// TaskPatch is a partial update merged over an existing task. Nil fields are
// omitted; non-nil fields overwrite, including overwrites to the zero value.
// Setting CategoryID to an empty string clears the category reference.
type TaskPatch struct {
	Title       *string
	Description *string
	Date        *string
	DueDate     *time.Time
	Status      *Status
	Priority    *Priority
	CategoryID  *string
	Labels      *[]string
}

// Apply merges the patch into t, field by field
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Labels != nil {
		t.Labels = append([]string(nil), (*p.Labels)...)
	}
}

// ColumnDraft is the input to column creation
type ColumnDraft struct {
	Title  string
	Status Status
	Color  string
}

// ColumnPatch is a partial update to a column. TaskIDs replaces the whole
// ordered list when set.
type ColumnPatch struct {
	Title   *string
	Status  *Status
	Color   *string
	TaskIDs *[]string
}

// Apply merges the patch into c
func (p ColumnPatch) Apply(c *Column) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.TaskIDs != nil {
		c.TaskIDs = append([]string(nil), (*p.TaskIDs)...)
	}
}

// CategoryDraft is the input to category creation
type CategoryDraft struct {
	Name     string
	Color    string
	Icon     string
	ColumnID string
}

// CategoryPatch is a partial update to a category
type CategoryPatch struct {
	Name     *string
	Color    *string
	Icon     *string
	ColumnID *string
}

// Apply merges the patch into c
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.ColumnID != nil {
		c.ColumnID = *p.ColumnID
	}
}

// LabelDraft is the input to label creation
type LabelDraft struct {
	Name  string
	Color string
}

// LabelPatch is a partial update to a label
type LabelPatch struct {
	Name  *string
	Color *string
}

// Apply merges the patch into l
func (p LabelPatch) Apply(l *Label) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Color != nil {
		l.Color = *p.Color
	}
}
