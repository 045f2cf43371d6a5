// Package store holds the authoritative in-memory task and board state and
// keeps it synchronized with the persistence adapter. Every mutating
// operation writes through the adapter first, then reloads the full state,
// so the in-memory view only ever advances past a successful write.
package store

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"pano/internal/models"
	"pano/internal/storage"
)

// Store owns the task collection and the board for the session. Construct
// one with New and hand it to the UI; operations are serialized under a
// single mutex, so overlapping calls from different goroutines apply their
// read-modify-write cycles one at a time.
type Store struct {
	mu      sync.Mutex
	adapter *storage.Adapter

	tasks   []models.Task
	board   *models.Board
	loading bool
	err     error
}

// New creates a store over the given adapter. The board starts as the
// default board until Refresh finds a persisted one.
func New(adapter *storage.Adapter) *Store {
	return &Store{
		adapter: adapter,
		tasks:   []models.Task{},
		board:   models.DefaultBoard(),
	}
}

// Tasks returns a snapshot of the current task collection
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task(nil), s.tasks...)
}

// Board returns a snapshot of the current board
func (s *Store) Board() *models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Loading reports whether a refresh is in flight
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error recorded by the last failed operation, if any. It
// is cleared at the start of every operation.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Refresh reloads tasks and board from the adapter. On failure the prior
// in-memory state is kept and the error state is set.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
	return s.refresh(ctx)
}

// refresh is the locked reload. An absent board document leaves the current
// (default) board in place.
func (s *Store) refresh(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	tasks, err := s.adapter.LoadTasks(ctx)
	if err != nil {
		return s.fail("refresh", err)
	}
	board, err := s.adapter.LoadBoard(ctx)
	if err != nil {
		return s.fail("refresh", err)
	}

	s.tasks = tasks
	if board != nil {
		s.board = board
	}
	return nil
}

// fail records and logs an adapter failure, leaving state untouched
func (s *Store) fail(op string, err error) error {
	log.WithError(err).Errorf("%s failed", op)
	s.err = err
	return err
}

// effectiveStatus resolves the status a task should carry: a category bound
// to a column forces that column's status, overriding anything supplied.
func (s *Store) effectiveStatus(categoryID string, supplied models.Status) (models.Status, bool) {
	if cat := s.board.CategoryByID(categoryID); cat != nil && cat.ColumnID != "" {
		if col := s.board.ColumnByID(cat.ColumnID); col != nil {
			return col.Status, true
		}
	}
	return supplied, false
}

// AddTask persists a new task, appends its id to the matching column and
// reloads. The category's column wins over any status in the draft.
func (s *Store) AddTask(ctx context.Context, draft models.TaskDraft) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	status, _ := s.effectiveStatus(draft.CategoryID, draft.Status)
	if status == "" {
		status = models.StatusTodo
	}
	draft.Status = status

	task, err := s.adapter.CreateTask(ctx, draft)
	if err != nil {
		return models.Task{}, s.fail("add task", err)
	}

	board := s.board.Clone()
	if col := board.ColumnByStatus(status); col != nil {
		col.TaskIDs = append(col.TaskIDs, task.ID)
		if err := s.adapter.SaveBoard(ctx, board); err != nil {
			return models.Task{}, s.fail("add task", err)
		}
	}

	if err := s.refresh(ctx); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask merges a patch into an existing task. When the status changes,
// directly or through a category override, the task's id moves to the
// column bound to the new status.
func (s *Store) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
	return s.updateTask(ctx, id, patch)
}

func (s *Store) updateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	var current *models.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			current = &s.tasks[i]
			break
		}
	}
	if current == nil {
		return s.fail("update task", fmt.Errorf("update task %s: %w", id, models.ErrTaskNotFound))
	}

	if patch.CategoryID != nil && *patch.CategoryID != "" {
		supplied := current.Status
		if patch.Status != nil {
			supplied = *patch.Status
		}
		if status, forced := s.effectiveStatus(*patch.CategoryID, supplied); forced {
			patch.Status = &status
		}
	}

	statusChanged := patch.Status != nil && *patch.Status != current.Status
	newStatus := current.Status
	if patch.Status != nil {
		newStatus = *patch.Status
	}

	if err := s.adapter.UpdateTask(ctx, id, patch); err != nil {
		return s.fail("update task", err)
	}

	if statusChanged {
		board := s.board.Clone()
		removeFromAllColumns(board, id)
		if col := board.ColumnByStatus(newStatus); col != nil {
			col.TaskIDs = append(col.TaskIDs, id)
		}
		if err := s.adapter.SaveBoard(ctx, board); err != nil {
			return s.fail("update task", err)
		}
	}

	return s.refresh(ctx)
}

// DeleteTask removes a task from the collection and from every column.
// Deleting an unknown id is a no-op.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	if err := s.adapter.DeleteTask(ctx, id); err != nil {
		return s.fail("delete task", err)
	}

	board := s.board.Clone()
	removeFromAllColumns(board, id)
	if err := s.adapter.SaveBoard(ctx, board); err != nil {
		return s.fail("delete task", err)
	}

	return s.refresh(ctx)
}

// MoveTask removes the task id from the source column and inserts it at
// newIndex in the target column, clamped to the valid range. When the two
// columns carry different statuses the task's status follows the target.
// Unknown column ids make the whole call a silent no-op.
func (s *Store) MoveTask(ctx context.Context, taskID, sourceColumnID, targetColumnID string, newIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	source := board.ColumnByID(sourceColumnID)
	target := board.ColumnByID(targetColumnID)
	if source == nil || target == nil {
		return nil
	}

	source.TaskIDs = removeID(source.TaskIDs, taskID)
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(target.TaskIDs) {
		newIndex = len(target.TaskIDs)
	}
	target.TaskIDs = append(target.TaskIDs, "")
	copy(target.TaskIDs[newIndex+1:], target.TaskIDs[newIndex:])
	target.TaskIDs[newIndex] = taskID

	if err := s.adapter.SaveBoard(ctx, board); err != nil {
		return s.fail("move task", err)
	}

	if source.Status != target.Status {
		status := target.Status
		if err := s.adapter.UpdateTask(ctx, taskID, models.TaskPatch{Status: &status}); err != nil {
			return s.fail("move task", err)
		}
	}

	return s.refresh(ctx)
}

// ToggleTaskStatus flips a task between completed and todo. Unknown ids are
// ignored.
func (s *Store) ToggleTaskStatus(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	var task *models.Task
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			task = &s.tasks[i]
			break
		}
	}
	if task == nil {
		return nil
	}

	status := models.StatusCompleted
	if task.Status == models.StatusCompleted {
		status = models.StatusTodo
	}
	return s.updateTask(ctx, taskID, models.TaskPatch{Status: &status})
}

// AddColumn appends a new column to the board
func (s *Store) AddColumn(ctx context.Context, draft models.ColumnDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	board.Columns = append(board.Columns, models.Column{
		ID:      models.NewID(),
		Title:   draft.Title,
		Status:  draft.Status,
		TaskIDs: []string{},
		Color:   draft.Color,
	})
	return s.saveBoard(ctx, "add column", board)
}

// UpdateColumn patch-merges into the column with the given id; unknown ids
// are a no-op
func (s *Store) UpdateColumn(ctx context.Context, id string, patch models.ColumnPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	col := board.ColumnByID(id)
	if col == nil {
		return nil
	}
	patch.Apply(col)
	return s.saveBoard(ctx, "update column", board)
}

// DeleteColumn removes a column. Tasks keep their status; they simply stop
// appearing on the board until a column with that status exists again.
func (s *Store) DeleteColumn(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	cols := board.Columns[:0]
	for _, c := range board.Columns {
		if c.ID != id {
			cols = append(cols, c)
		}
	}
	board.Columns = cols
	return s.saveBoard(ctx, "delete column", board)
}

// AddCategory appends a new category to the board
func (s *Store) AddCategory(ctx context.Context, draft models.CategoryDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	board.Categories = append(board.Categories, models.Category{
		ID:       models.NewID(),
		Name:     draft.Name,
		Color:    draft.Color,
		Icon:     draft.Icon,
		ColumnID: draft.ColumnID,
	})
	return s.saveBoard(ctx, "add category", board)
}

// UpdateCategory patch-merges into the category with the given id
func (s *Store) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	cat := board.CategoryByID(id)
	if cat == nil {
		return nil
	}
	patch.Apply(cat)
	return s.saveBoard(ctx, "update category", board)
}

// DeleteCategory removes a category. Tasks referencing it keep their
// dangling categoryId; resolution simply fails to the fallback bucket.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	cats := board.Categories[:0]
	for _, c := range board.Categories {
		if c.ID != id {
			cats = append(cats, c)
		}
	}
	board.Categories = cats
	return s.saveBoard(ctx, "delete category", board)
}

// AddLabel appends a new label to the board
func (s *Store) AddLabel(ctx context.Context, draft models.LabelDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	board.Labels = append(board.Labels, models.Label{
		ID:    models.NewID(),
		Name:  draft.Name,
		Color: draft.Color,
	})
	return s.saveBoard(ctx, "add label", board)
}

// UpdateLabel patch-merges into the label with the given id
func (s *Store) UpdateLabel(ctx context.Context, id string, patch models.LabelPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	for i := range board.Labels {
		if board.Labels[i].ID == id {
			patch.Apply(&board.Labels[i])
			return s.saveBoard(ctx, "update label", board)
		}
	}
	return nil
}

// DeleteLabel removes a label; task label references are left dangling
func (s *Store) DeleteLabel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil

	board := s.board.Clone()
	labels := board.Labels[:0]
	for _, l := range board.Labels {
		if l.ID != id {
			labels = append(labels, l)
		}
	}
	board.Labels = labels
	return s.saveBoard(ctx, "delete label", board)
}

// saveBoard persists a mutated board and reloads state
func (s *Store) saveBoard(ctx context.Context, op string, board *models.Board) error {
	if err := s.adapter.SaveBoard(ctx, board); err != nil {
		return s.fail(op, err)
	}
	return s.refresh(ctx)
}

func removeFromAllColumns(board *models.Board, taskID string) {
	for i := range board.Columns {
		board.Columns[i].TaskIDs = removeID(board.Columns[i].TaskIDs, taskID)
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
