// Package stats computes the dashboard's derived views from the current
// task collection. Everything here is pure: no persisted state, no caching,
// recomputed from scratch on every change. Tasks with unparseable dates are
// skipped by the date-bucketed views instead of failing the computation.
package stats

import (
	"math"
	"sort"
	"time"

	"pano/internal/models"
)

// DefaultWeeklyGoal is the completion target shown next to the success rate
const DefaultWeeklyGoal = 10

// fallbackColor is used when no color can be resolved for a chart bucket
const fallbackColor = "#94A3B8"

// priorityColors is the fixed lookup for the priority breakdown
var priorityColors = map[models.Priority]string{
	models.PriorityLow:    "#10B981",
	models.PriorityMedium: "#F59E0B",
	models.PriorityHigh:   "#EF4444",
}

// TaskStats are the headline counters on the dashboard
type TaskStats struct {
	Pending   int
	Completed int
	Total     int
	Progress  int // rounded percentage, 0 when Total == 0
}

// ChartItem is one bucket of a distribution chart
type ChartItem struct {
	Name  string
	Count int
	Color string
}

// ChartData groups the category and priority distributions
type ChartData struct {
	Categories []ChartItem
	Priorities []ChartItem
}

// WeeklyDay is one day of the weekly progress series
type WeeklyDay struct {
	Date       string // yyyy-mm-dd
	Completed  int
	Total      int
	Percentage int
}

// SuccessRate summarizes completion over the trailing 30 days
type SuccessRate struct {
	Rate           int
	CompletedCount int
	TotalCount     int
	WeeklyGoal     int
}

// Dashboard is the full set of derived views
type Dashboard struct {
	Stats    TaskStats
	Chart    ChartData
	Today    []models.Task
	ThisWeek []models.Task
	Weekly   []WeeklyDay
	Success  SuccessRate
}

// Compute derives all dashboard views from the task collection. The board
// resolves category names and colors; now anchors the calendar windows.
func Compute(tasks []models.Task, board *models.Board, now time.Time, weeklyGoal int) Dashboard {
	if weeklyGoal <= 0 {
		weeklyGoal = DefaultWeeklyGoal
	}
	return Dashboard{
		Stats:    Counters(tasks),
		Chart:    Distributions(tasks, board),
		Today:    TodayTasks(tasks, now),
		ThisWeek: ThisWeekTasks(tasks, now),
		Weekly:   WeeklySeries(tasks, now),
		Success:  TrailingSuccessRate(tasks, now, weeklyGoal),
	}
}

// Counters computes the headline task counters
func Counters(tasks []models.Task) TaskStats {
	completed := 0
	for _, t := range tasks {
		if t.Status == models.StatusCompleted {
			completed++
		}
	}
	total := len(tasks)
	return TaskStats{
		Pending:   total - completed,
		Completed: completed,
		Total:     total,
		Progress:  percentage(completed, total),
	}
}

// Distributions buckets tasks by category and by priority. Tasks without a
// resolvable category land in "Other"; priority defaults to medium.
func Distributions(tasks []models.Task, board *models.Board) ChartData {
	catCounts := map[string]int{}
	catColors := map[string]string{}
	catOrder := []string{}
	prioCounts := map[models.Priority]int{}

	for _, t := range tasks {
		name := "Other"
		color := fallbackColor
		if cat := board.CategoryByID(t.CategoryID); cat != nil {
			name = cat.Name
			if cat.Color != "" {
				color = cat.Color
			}
		}
		if _, seen := catCounts[name]; !seen {
			catOrder = append(catOrder, name)
			catColors[name] = color
		}
		catCounts[name]++

		prio := t.Priority
		if prio == "" {
			prio = models.PriorityMedium
		}
		prioCounts[prio]++
	}

	var data ChartData
	for _, name := range catOrder {
		data.Categories = append(data.Categories, ChartItem{
			Name:  name,
			Count: catCounts[name],
			Color: catColors[name],
		})
	}
	for _, prio := range []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh} {
		if count := prioCounts[prio]; count > 0 {
			data.Priorities = append(data.Priorities, ChartItem{
				Name:  priorityLabel(prio),
				Count: count,
				Color: priorityColors[prio],
			})
		}
	}
	return data
}

// TodayTasks returns the tasks due on now's calendar day, completed last
func TodayTasks(tasks []models.Task, now time.Time) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		due, ok := t.EffectiveDueDate()
		if ok && sameDay(due, now) {
			out = append(out, t)
		}
	}
	sortTasksForDisplay(out)
	return out
}

// ThisWeekTasks returns the tasks due inside the Monday-start week
// containing now, completed last
func ThisWeekTasks(tasks []models.Task, now time.Time) []models.Task {
	start := startOfWeek(now)
	end := start.AddDate(0, 0, 7)

	var out []models.Task
	for _, t := range tasks {
		due, ok := t.EffectiveDueDate()
		if !ok {
			continue
		}
		if !due.Before(start) && due.Before(end) {
			out = append(out, t)
		}
	}
	sortTasksForDisplay(out)
	return out
}

// WeeklySeries computes per-day totals for the 7 days starting at the most
// recent Monday. Always exactly 7 entries.
func WeeklySeries(tasks []models.Task, now time.Time) []WeeklyDay {
	start := startOfWeek(now)
	series := make([]WeeklyDay, 7)

	for i := range series {
		day := start.AddDate(0, 0, i)
		entry := WeeklyDay{Date: day.Format("2006-01-02")}
		for _, t := range tasks {
			due, ok := t.EffectiveDueDate()
			if !ok || !sameDay(due, day) {
				continue
			}
			entry.Total++
			if t.Status == models.StatusCompleted {
				entry.Completed++
			}
		}
		entry.Percentage = percentage(entry.Completed, entry.Total)
		series[i] = entry
	}
	return series
}

// TrailingSuccessRate computes the completion rate over tasks whose date
// falls within the trailing 30 days
func TrailingSuccessRate(tasks []models.Task, now time.Time, weeklyGoal int) SuccessRate {
	cutoff := now.AddDate(0, 0, -30)

	completed, total := 0, 0
	for _, t := range tasks {
		date, ok := models.ParseDate(t.Date)
		if !ok || date.Before(cutoff) {
			continue
		}
		total++
		if t.Status == models.StatusCompleted {
			completed++
		}
	}

	return SuccessRate{
		Rate:           percentage(completed, total),
		CompletedCount: completed,
		TotalCount:     total,
		WeeklyGoal:     weeklyGoal,
	}
}

// sortTasksForDisplay orders completed tasks last, ties broken by ascending
// due date
func sortTasksForDisplay(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ci := tasks[i].Status == models.StatusCompleted
		cj := tasks[j].Status == models.StatusCompleted
		if ci != cj {
			return !ci
		}
		di, _ := tasks[i].EffectiveDueDate()
		dj, _ := tasks[j].EffectiveDueDate()
		return di.Before(dj)
	})
}

// startOfWeek returns midnight of the Monday of now's week
func startOfWeek(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	return day.AddDate(0, 0, -offset)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func priorityLabel(p models.Priority) string {
	switch p {
	case models.PriorityLow:
		return "Low"
	case models.PriorityMedium:
		return "Medium"
	case models.PriorityHigh:
		return "High"
	}
	return string(p)
}
