package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pano/internal/models"
)

// failingBlob errors on everything; used to exercise failure propagation
type failingBlob struct{ err error }

func (f *failingBlob) Get(context.Context, string) ([]byte, bool, error) { return nil, false, f.err }
func (f *failingBlob) Set(context.Context, string, []byte) error         { return f.err }
func (f *failingBlob) Close() error                                      { return nil }

func TestLoadTasksAbsent(t *testing.T) {
	a := NewAdapter(NewMemory())

	tasks, err := a.LoadTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NotNil(t, tasks)
}

func TestLoadTasksMalformed(t *testing.T) {
	blob := NewMemory()
	require.NoError(t, blob.Set(context.Background(), TasksKey, []byte("{not json")))

	a := NewAdapter(blob)
	tasks, err := a.LoadTasks(context.Background())
	require.NoError(t, err, "malformed document must not surface an error")
	assert.Empty(t, tasks)
}

func TestLoadBoardAbsentAndMalformed(t *testing.T) {
	ctx := context.Background()
	blob := NewMemory()
	a := NewAdapter(blob)

	board, err := a.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Nil(t, board, "absent board resolves to nil, caller applies default")

	require.NoError(t, blob.Set(ctx, BoardKey, []byte("[]")))
	board, err = a.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Nil(t, board)
}

func TestCreateTaskAssignsIdentityAndTimestamps(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory())

	task, err := a.CreateTask(ctx, models.TaskDraft{
		Title:    "Buy milk",
		Status:   models.StatusTodo,
		Priority: models.PriorityLow,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	tasks, err := a.LoadTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	if diff := cmp.Diff(task, tasks[0]); diff != "" {
		t.Errorf("round-trip mismatch (-created +loaded):\n%s", diff)
	}
}

func TestUpdateTaskMergesPatch(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory())

	task, err := a.CreateTask(ctx, models.TaskDraft{Title: "Buy milk", Status: models.StatusTodo})
	require.NoError(t, err)

	status := models.StatusCompleted
	title := "Buy oat milk"
	require.NoError(t, a.UpdateTask(ctx, task.ID, models.TaskPatch{Title: &title, Status: &status}))

	tasks, err := a.LoadTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy oat milk", tasks[0].Title)
	assert.Equal(t, models.StatusCompleted, tasks[0].Status)
	assert.False(t, tasks[0].UpdatedAt.Before(tasks[0].CreatedAt), "updatedAt must not precede createdAt")
}

func TestUpdateTaskNotFound(t *testing.T) {
	a := NewAdapter(NewMemory())

	err := a.UpdateTask(context.Background(), "missing", models.TaskPatch{})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
}

func TestDeleteTaskIdempotent(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory())

	task, err := a.CreateTask(ctx, models.TaskDraft{Title: "Buy milk"})
	require.NoError(t, err)

	require.NoError(t, a.DeleteTask(ctx, task.ID))
	require.NoError(t, a.DeleteTask(ctx, task.ID), "second delete must be a no-op")

	tasks, err := a.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestBoardRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter(NewMemory())

	board := models.DefaultBoard()
	board.Columns[1].TaskIDs = []string{"123", "456"}
	board.Categories = append(board.Categories, models.Category{ID: "c1", Name: "Work", Color: "#38BDF8", ColumnID: "review"})
	board.Labels = append(board.Labels, models.Label{ID: "l1", Name: "urgent", Color: "#EF4444"})

	require.NoError(t, a.SaveBoard(ctx, board))

	loaded, err := a.LoadBoard(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	if diff := cmp.Diff(board, loaded); diff != "" {
		t.Errorf("board round-trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestBackendFailuresSurface(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	a := NewAdapter(&failingBlob{err: boom})

	_, err := a.LoadTasks(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = a.LoadBoard(ctx)
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, a.SaveTasks(ctx, nil), boom)
	assert.ErrorIs(t, a.SaveBoard(ctx, models.DefaultBoard()), boom)

	_, err = a.CreateTask(ctx, models.TaskDraft{Title: "x"})
	assert.ErrorIs(t, err, boom)
}
