package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"rfc3339", "2025-03-12T10:30:00Z", true},
		{"rfc3339 with offset", "2025-03-12T10:30:00+03:00", true},
		{"bare date", "2025-03-12", true},
		{"no zone", "2025-03-12T10:30:00", true},
		{"empty", "", false},
		{"garbage", "not-a-date", false},
		{"truncated", "2025-03", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts, ok := ParseDate(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, 2025, ts.Year())
				assert.Equal(t, time.March, ts.Month())
			}
		})
	}
}

func TestEffectiveDueDatePrefersMaterialized(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	task := Task{Date: "2025-03-12T00:00:00Z", DueDate: &due}

	got, ok := task.EffectiveDueDate()
	require.True(t, ok)
	assert.Equal(t, due, got)

	task.DueDate = nil
	got, ok = task.EffectiveDueDate()
	require.True(t, ok)
	assert.Equal(t, time.March, got.Month())
}

func TestEffectiveDueDateMalformed(t *testing.T) {
	task := Task{Date: "soon"}
	_, ok := task.EffectiveDueDate()
	assert.False(t, ok)
}

func TestTaskPatchOmittedVsSet(t *testing.T) {
	task := Task{
		Title:       "Buy milk",
		Description: "2 liters",
		Status:      StatusTodo,
		Priority:    PriorityHigh,
		CategoryID:  "cat-1",
	}

	// Omitted fields keep their values.
	TaskPatch{Title: strPtr("Buy oat milk")}.Apply(&task)
	assert.Equal(t, "Buy oat milk", task.Title)
	assert.Equal(t, "2 liters", task.Description)
	assert.Equal(t, "cat-1", task.CategoryID)

	// Explicitly set empty clears.
	TaskPatch{Description: strPtr(""), CategoryID: strPtr("")}.Apply(&task)
	assert.Empty(t, task.Description)
	assert.Empty(t, task.CategoryID)
	assert.Equal(t, PriorityHigh, task.Priority)
}

func TestTaskPatchLabelsReplaceWholeSet(t *testing.T) {
	task := Task{Labels: []string{"a", "b"}}

	TaskPatch{}.Apply(&task)
	assert.Equal(t, []string{"a", "b"}, task.Labels)

	empty := []string{}
	TaskPatch{Labels: &empty}.Apply(&task)
	assert.Empty(t, task.Labels)
}

func TestNewIDMonotonic(t *testing.T) {
	prev := ""
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		assert.Greater(t, id, prev, "ids must be strictly increasing")
		prev = id
	}
}

func TestDefaultBoard(t *testing.T) {
	board := DefaultBoard()

	require.Len(t, board.Columns, 5)
	seen := map[Status]bool{}
	for _, col := range board.Columns {
		assert.False(t, seen[col.Status], "duplicate column status %s", col.Status)
		seen[col.Status] = true
		assert.Empty(t, col.TaskIDs)
		assert.Equal(t, string(col.Status), col.ID)
	}
	assert.Empty(t, board.Categories)
	assert.Empty(t, board.Labels)
}

func TestBoardClone(t *testing.T) {
	board := DefaultBoard()
	board.Columns[1].TaskIDs = []string{"t1"}

	clone := board.Clone()
	clone.Columns[1].TaskIDs = append(clone.Columns[1].TaskIDs, "t2")
	clone.Categories = append(clone.Categories, Category{ID: "c1"})

	assert.Len(t, board.Columns[1].TaskIDs, 1, "clone must not share column slices")
	assert.Empty(t, board.Categories)
}

func TestBoardLookups(t *testing.T) {
	board := DefaultBoard()
	board.Categories = append(board.Categories, Category{ID: "c1", Name: "Work", ColumnID: "review"})

	assert.Equal(t, "To Do", board.ColumnByID("todo").Title)
	assert.Nil(t, board.ColumnByID("nope"))
	assert.Equal(t, "in_progress", board.ColumnByStatus(StatusInProgress).ID)
	assert.Nil(t, board.ColumnByStatus(StatusArchived))
	assert.Equal(t, "Work", board.CategoryByID("c1").Name)
	assert.Nil(t, board.CategoryByID(""))
	assert.Nil(t, board.CategoryByID("dangling"))
}

func strPtr(s string) *string { return &s }
