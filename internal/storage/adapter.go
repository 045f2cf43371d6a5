package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"pano/internal/models"
)

// Adapter persists the task collection and the board as two whole JSON
// documents in a Blob backend. Writes always overwrite the full document;
// there are no partial writes, no retries and no rollback. A failed write
// leaves the prior durable state untouched.
type Adapter struct {
	blob Blob
}

// NewAdapter creates a persistence adapter over the given blob store
func NewAdapter(blob Blob) *Adapter {
	return &Adapter{blob: blob}
}

// LoadTasks reads the task collection. An absent or malformed document
// yields an empty collection rather than an error; only backend failures
// surface.
func (a *Adapter) LoadTasks(ctx context.Context) ([]models.Task, error) {
	data, found, err := a.blob.Get(ctx, TasksKey)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if !found {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	if err := sonic.Unmarshal(data, &tasks); err != nil {
		log.WithError(err).Warn("tasks document malformed, starting empty")
		return []models.Task{}, nil
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// LoadBoard reads the board document. Absent or malformed documents yield
// nil; the caller applies the default board.
func (a *Adapter) LoadBoard(ctx context.Context) (*models.Board, error) {
	data, found, err := a.blob.Get(ctx, BoardKey)
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	if !found {
		return nil, nil
	}

	var board models.Board
	if err := sonic.Unmarshal(data, &board); err != nil {
		log.WithError(err).Warn("board document malformed, ignoring")
		return nil, nil
	}
	return &board, nil
}

// SaveTasks overwrites the entire task-collection document
func (a *Adapter) SaveTasks(ctx context.Context, tasks []models.Task) error {
	data, err := sonic.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := a.blob.Set(ctx, TasksKey, data); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// SaveBoard overwrites the entire board document
func (a *Adapter) SaveBoard(ctx context.Context, board *models.Board) error {
	data, err := sonic.Marshal(board)
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	if err := a.blob.Set(ctx, BoardKey, data); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// CreateTask appends a new task to the collection and writes it back. The
// id and both timestamps are assigned here.
func (a *Adapter) CreateTask(ctx context.Context, draft models.TaskDraft) (models.Task, error) {
	tasks, err := a.LoadTasks(ctx)
	if err != nil {
		return models.Task{}, err
	}

	now := time.Now()
	task := models.Task{
		ID:          models.NewID(),
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		DueDate:     draft.DueDate,
		Status:      draft.Status,
		Priority:    draft.Priority,
		CategoryID:  draft.CategoryID,
		Labels:      append([]string(nil), draft.Labels...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tasks = append(tasks, task)
	if err := a.SaveTasks(ctx, tasks); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask merges the patch into the task with the given id and writes the
// collection back. Returns models.ErrTaskNotFound when the id is absent.
func (a *Adapter) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	tasks, err := a.LoadTasks(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("update task %s: %w", id, models.ErrTaskNotFound)
	}

	patch.Apply(&tasks[idx])
	tasks[idx].UpdatedAt = time.Now()

	return a.SaveTasks(ctx, tasks)
}

// DeleteTask removes the task with the given id, writing the collection
// back. Deleting an absent id is a no-op, not an error.
func (a *Adapter) DeleteTask(ctx context.Context, id string) error {
	tasks, err := a.LoadTasks(ctx)
	if err != nil {
		return err
	}

	filtered := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}

	return a.SaveTasks(ctx, filtered)
}
