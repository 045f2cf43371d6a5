package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pano/internal/models"
	"pano/internal/stats"
	"pano/internal/store"
	"pano/internal/ui/styles"
)

// DashboardView renders the aggregate statistics: headline counters, the
// weekly progress series and the category/priority breakdowns.
type DashboardView struct {
	store      *store.Store
	styles     *styles.Styles
	weeklyGoal int

	width  int
	height int

	data stats.Dashboard
}

// NewDashboardView creates the dashboard view
func NewDashboardView(s *store.Store, st *styles.Styles, weeklyGoal int) *DashboardView {
	return &DashboardView{
		store:      s,
		styles:     st,
		weeklyGoal: weeklyGoal,
	}
}

func (d *DashboardView) Init() tea.Cmd {
	d.Reload()
	return nil
}

// Reload recomputes the derived views from the store's current snapshot
func (d *DashboardView) Reload() {
	d.data = stats.Compute(d.store.Tasks(), d.store.Board(), time.Now(), d.weeklyGoal)
}

func (d *DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
	case RefreshedMsg:
		d.Reload()
	}
	return d, nil
}

func (d *DashboardView) View() string {
	var sections []string

	sections = append(sections, d.renderCounters())
	sections = append(sections, d.renderWeekly())
	if breakdown := d.renderBreakdowns(); breakdown != "" {
		sections = append(sections, breakdown)
	}
	sections = append(sections, d.renderSuccess())
	sections = append(sections, d.styles.Help.Render("tab board · q quit"))

	return strings.Join(sections, "\n\n")
}

func (d *DashboardView) renderCounters() string {
	s := d.data.Stats
	cards := []string{
		d.statCard("Pending", fmt.Sprintf("%d", s.Pending)),
		d.statCard("Completed", fmt.Sprintf("%d", s.Completed)),
		d.statCard("Total", fmt.Sprintf("%d", s.Total)),
		d.statCard("Progress", fmt.Sprintf("%d%%", s.Progress)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (d *DashboardView) statCard(label, value string) string {
	content := d.styles.StatValue.Render(value) + "\n" + d.styles.StatLabel.Render(label)
	return d.styles.StatCard.Render(content)
}

func (d *DashboardView) renderWeekly() string {
	var sb strings.Builder
	sb.WriteString(d.styles.Title.Render("This week") + "\n")

	for _, day := range d.data.Weekly {
		date, _ := time.Parse("2006-01-02", day.Date)
		bar := d.renderBar(day.Percentage, 20)
		sb.WriteString(fmt.Sprintf("%s %s %d/%d\n",
			d.styles.StatLabel.Render(date.Format("Mon")),
			bar, day.Completed, day.Total))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (d *DashboardView) renderBar(percentage, width int) string {
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	return d.styles.BarFilled.Render(strings.Repeat("█", filled)) +
		d.styles.BarEmpty.Render(strings.Repeat("░", width-filled))
}

func (d *DashboardView) renderBreakdowns() string {
	if len(d.data.Chart.Categories) == 0 && len(d.data.Chart.Priorities) == 0 {
		return ""
	}

	var sb strings.Builder
	if len(d.data.Chart.Categories) > 0 {
		sb.WriteString(d.styles.Title.Render("Categories") + "\n")
		sb.WriteString(d.renderChartItems(d.data.Chart.Categories))
	}
	if len(d.data.Chart.Priorities) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(d.styles.Title.Render("Priorities") + "\n")
		sb.WriteString(d.renderChartItems(d.data.Chart.Priorities))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (d *DashboardView) renderChartItems(items []stats.ChartItem) string {
	var sb strings.Builder
	for _, item := range items {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(item.Color)).Render("●")
		sb.WriteString(fmt.Sprintf("%s %s %d\n", dot, item.Name, item.Count))
	}
	return sb.String()
}

func (d *DashboardView) renderSuccess() string {
	s := d.data.Success
	line := fmt.Sprintf("Last 30 days: %d%% (%d of %d) · weekly goal %d",
		s.Rate, s.CompletedCount, s.TotalCount, s.WeeklyGoal)
	return d.styles.Title.Render("Success rate") + "\n" + d.styles.StatLabel.Render(line)
}

// todaySummary is shown in the title bar
func (d *DashboardView) TodaySummary() string {
	done := 0
	for _, t := range d.data.Today {
		if t.Status == models.StatusCompleted {
			done++
		}
	}
	return fmt.Sprintf("today %d/%d", done, len(d.data.Today))
}
