package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pano/internal/store"
	"pano/internal/ui/styles"
	"pano/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewBoard View = iota
	ViewDashboard
)

type App struct {
	store       *store.Store
	styles      *styles.Styles
	currentView View
	board       *views.BoardView
	dashboard   *views.DashboardView
	width       int
	height      int
	errMsg      string
}

// Creates a new application
func NewApp(s *store.Store, theme styles.Theme, weeklyGoal int) *App {
	st := styles.NewStyles(theme)
	return &App{
		store:       s,
		styles:      st,
		currentView: ViewBoard,
		board:       views.NewBoardView(s, st),
		dashboard:   views.NewDashboardView(s, st, weeklyGoal),
	}
}

func (a *App) Init() tea.Cmd {
	return a.board.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.Update(msg)
		a.dashboard.Update(msg)
		return a, nil

	case views.RefreshedMsg:
		a.errMsg = ""
		a.board.Update(msg)
		a.dashboard.Update(msg)
		return a, nil

	case views.OpFailedMsg:
		// The store already logged and recorded it; surface it in the footer.
		a.errMsg = msg.Err.Error()
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			if a.currentView == ViewBoard && !a.boardCapturesKeys() {
				a.currentView = ViewDashboard
				a.dashboard.Reload()
				return a, nil
			} else if a.currentView == ViewDashboard {
				a.currentView = ViewBoard
				return a, nil
			}
		case "q":
			if !a.boardCapturesKeys() {
				return a, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewDashboard:
		_, cmd = a.dashboard.Update(msg)
	}

	return a, cmd
}

// boardCapturesKeys reports whether the board is in a text-entry or
// confirmation state where global keys must pass through
func (a *App) boardCapturesKeys() bool {
	return a.currentView == ViewBoard && a.board.CapturesKeys()
}

func (a *App) View() string {
	title := a.styles.Title.Render("pano")
	tabs := a.styles.Tab.Render("board") + a.styles.Tab.Render("dashboard")
	switch a.currentView {
	case ViewBoard:
		tabs = a.styles.TabActive.Render("board") + a.styles.Tab.Render("dashboard")
	case ViewDashboard:
		tabs = a.styles.Tab.Render("board") + a.styles.TabActive.Render("dashboard")
	}
	header := a.styles.TitleBar.Render(lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", tabs))

	var body string
	switch a.currentView {
	case ViewDashboard:
		body = a.dashboard.View()
	default:
		body = a.board.View()
	}

	out := header + "\n\n" + body
	if a.errMsg != "" {
		out += "\n" + a.styles.Error.Render("error: "+a.errMsg)
	}
	return out
}
