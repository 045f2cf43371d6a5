package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pano/internal/models"
	"pano/internal/store"
	"pano/internal/ui/keys"
	"pano/internal/ui/styles"
)

// RefreshedMsg signals that the store reloaded; views re-pull snapshots
type RefreshedMsg struct{}

// OpFailedMsg carries a failed store operation's error
type OpFailedMsg struct{ Err error }

// Op wraps a store operation into a tea.Cmd
func Op(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return OpFailedMsg{Err: err}
		}
		return RefreshedMsg{}
	}
}

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// BoardView renders the kanban board: one column per status bucket, tasks
// in column order
type BoardView struct {
	store  *store.Store
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	tasks  map[string]models.Task
	board  *models.Board
	colIdx int
	rowIdx int

	// Task creation
	creating   bool
	titleInput textinput.Model

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   string
}

// NewBoardView creates the board view
func NewBoardView(s *store.Store, st *styles.Styles) *BoardView {
	input := textinput.New()
	input.Placeholder = "Task title"
	input.CharLimit = 200

	return &BoardView{
		store:      s,
		styles:     st,
		keys:       keys.Default(),
		tasks:      map[string]models.Task{},
		board:      models.DefaultBoard(),
		titleInput: input,
	}
}

func (b *BoardView) Init() tea.Cmd {
	return Op(b.store.Refresh)
}

// Reload re-pulls snapshots from the store after an operation completed
func (b *BoardView) Reload() {
	b.board = b.store.Board()
	b.tasks = map[string]models.Task{}
	for _, t := range b.store.Tasks() {
		b.tasks[t.ID] = t
	}
	if len(b.board.Columns) == 0 {
		b.colIdx, b.rowIdx = 0, 0
		return
	}
	b.colIdx = clamp(b.colIdx, 0, len(b.board.Columns)-1)
	b.rowIdx = clamp(b.rowIdx, 0, max(0, len(b.board.Columns[b.colIdx].TaskIDs)-1))
}

func (b *BoardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height

	case RefreshedMsg:
		b.Reload()

	case tea.KeyMsg:
		if b.creating {
			return b.updateCreating(msg)
		}
		if b.confirmingDelete {
			return b.updateConfirmingDelete(msg)
		}
		return b.updateNavigating(msg)
	}

	return b, nil
}

func (b *BoardView) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Confirm):
		title := strings.TrimSpace(b.titleInput.Value())
		if title == "" {
			// The store tolerates empty titles; the UI substitutes one.
			title = "Untitled task"
		}
		draft := models.TaskDraft{
			Title:    title,
			Date:     time.Now().Format(time.RFC3339),
			Status:   b.currentColumn().Status,
			Priority: models.PriorityMedium,
		}
		b.creating = false
		b.titleInput.Reset()
		return b, Op(func(ctx context.Context) error {
			_, err := b.store.AddTask(ctx, draft)
			return err
		})

	case key.Matches(msg, b.keys.Cancel):
		b.creating = false
		b.titleInput.Reset()
		return b, nil
	}

	var cmd tea.Cmd
	b.titleInput, cmd = b.titleInput.Update(msg)
	return b, cmd
}

func (b *BoardView) updateConfirmingDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Confirm):
		id := b.deleteTargetID
		b.confirmingDelete = false
		b.deleteTargetID = ""
		return b, Op(func(ctx context.Context) error {
			return b.store.DeleteTask(ctx, id)
		})

	case key.Matches(msg, b.keys.Cancel):
		b.confirmingDelete = false
		b.deleteTargetID = ""
	}
	return b, nil
}

func (b *BoardView) updateNavigating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	col := b.currentColumn()

	switch {
	case key.Matches(msg, b.keys.Up):
		b.rowIdx = clamp(b.rowIdx-1, 0, max(0, len(col.TaskIDs)-1))

	case key.Matches(msg, b.keys.Down):
		b.rowIdx = clamp(b.rowIdx+1, 0, max(0, len(col.TaskIDs)-1))

	case key.Matches(msg, b.keys.Left):
		b.colIdx = clamp(b.colIdx-1, 0, len(b.board.Columns)-1)
		b.rowIdx = clamp(b.rowIdx, 0, max(0, len(b.currentColumn().TaskIDs)-1))

	case key.Matches(msg, b.keys.Right):
		b.colIdx = clamp(b.colIdx+1, 0, len(b.board.Columns)-1)
		b.rowIdx = clamp(b.rowIdx, 0, max(0, len(b.currentColumn().TaskIDs)-1))

	case key.Matches(msg, b.keys.MoveLeft):
		if id, ok := b.selectedTaskID(); ok && b.colIdx > 0 {
			target := b.board.Columns[b.colIdx-1]
			idx := b.rowIdx
			b.colIdx--
			return b, b.moveCmd(id, col.ID, target.ID, idx)
		}

	case key.Matches(msg, b.keys.MoveRight):
		if id, ok := b.selectedTaskID(); ok && b.colIdx < len(b.board.Columns)-1 {
			target := b.board.Columns[b.colIdx+1]
			idx := b.rowIdx
			b.colIdx++
			return b, b.moveCmd(id, col.ID, target.ID, idx)
		}

	case key.Matches(msg, b.keys.MoveUp):
		if id, ok := b.selectedTaskID(); ok && b.rowIdx > 0 {
			b.rowIdx--
			return b, b.moveCmd(id, col.ID, col.ID, b.rowIdx)
		}

	case key.Matches(msg, b.keys.MoveDown):
		if id, ok := b.selectedTaskID(); ok && b.rowIdx < len(col.TaskIDs)-1 {
			b.rowIdx++
			return b, b.moveCmd(id, col.ID, col.ID, b.rowIdx)
		}

	case key.Matches(msg, b.keys.New):
		b.creating = true
		b.titleInput.Focus()
		return b, textinput.Blink

	case key.Matches(msg, b.keys.Toggle):
		if id, ok := b.selectedTaskID(); ok {
			return b, Op(func(ctx context.Context) error {
				return b.store.ToggleTaskStatus(ctx, id)
			})
		}

	case key.Matches(msg, b.keys.Delete):
		if id, ok := b.selectedTaskID(); ok {
			b.confirmingDelete = true
			b.deleteTargetID = id
		}
	}

	return b, nil
}

func (b *BoardView) moveCmd(taskID, sourceID, targetID string, index int) tea.Cmd {
	return Op(func(ctx context.Context) error {
		return b.store.MoveTask(ctx, taskID, sourceID, targetID, index)
	})
}

// CapturesKeys reports whether the view is in a text-entry or confirmation
// state and global key bindings should not fire
func (b *BoardView) CapturesKeys() bool {
	return b.creating || b.confirmingDelete
}

func (b *BoardView) currentColumn() *models.Column {
	if len(b.board.Columns) == 0 {
		return &models.Column{}
	}
	return &b.board.Columns[clamp(b.colIdx, 0, len(b.board.Columns)-1)]
}

func (b *BoardView) selectedTaskID() (string, bool) {
	col := b.currentColumn()
	if b.rowIdx < 0 || b.rowIdx >= len(col.TaskIDs) {
		return "", false
	}
	return col.TaskIDs[b.rowIdx], true
}

func (b *BoardView) View() string {
	if len(b.board.Columns) == 0 {
		return b.styles.Help.Render("No columns on the board")
	}

	colWidth := 24
	if b.width > 0 {
		if w := b.width/len(b.board.Columns) - 4; w > 12 && w < colWidth {
			colWidth = w
		}
	}

	rendered := make([]string, 0, len(b.board.Columns))
	for ci, col := range b.board.Columns {
		rendered = append(rendered, b.renderColumn(ci, col, colWidth))
	}
	view := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	if b.creating {
		prompt := b.styles.InputFocused.Render("New task in "+b.currentColumn().Title+": ") + b.titleInput.View()
		view += "\n" + prompt
	}
	if b.confirmingDelete {
		name := b.deleteTargetID
		if t, ok := b.tasks[b.deleteTargetID]; ok {
			name = t.Title
		}
		view += "\n" + b.styles.Error.Render(fmt.Sprintf("Delete %q? enter to confirm, esc to cancel", name))
	}

	help := "n new · space toggle · d delete · H/L move · K/J reorder · tab dashboard · q quit"
	return view + "\n" + b.styles.Help.Render(help)
}

func (b *BoardView) renderColumn(ci int, col models.Column, width int) string {
	var sb strings.Builder

	title := b.styles.ColumnTitle.Render(col.Title)
	count := b.styles.ColumnCount.Render(fmt.Sprintf(" %d", len(col.TaskIDs)))
	sb.WriteString(title + count + "\n")

	for ri, id := range col.TaskIDs {
		task, ok := b.tasks[id]
		if !ok {
			continue // orphaned id, tolerated
		}
		line := priorityMarker(task.Priority) + " " + truncate(task.Title, width-4)
		style := b.styles.Card
		if task.Status == models.StatusCompleted {
			style = b.styles.CardDone
		}
		if ci == b.colIdx && ri == b.rowIdx {
			style = b.styles.CardSelected
		}
		sb.WriteString(style.Render(line) + "\n")
	}

	box := b.styles.Column
	if ci == b.colIdx {
		box = b.styles.ColumnFocused
	}
	return box.Width(width).Render(strings.TrimRight(sb.String(), "\n"))
}

func priorityMarker(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return "▲"
	case models.PriorityLow:
		return "▽"
	default:
		return "•"
	}
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
