package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tally/internal/habit"
	"github.com/julianstephens/tally/internal/models"
	"github.com/julianstephens/tally/internal/storage"
	"github.com/julianstephens/tally/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHistory
	StateAddHabit
	StateConfirmDelete
)

type HabitFormModel struct {
	Name string
}

type Model struct {
	store         storage.Provider
	service       *habit.Service
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	// date is the day the list and stats are computed for. The Today tab
	// pins it to the current day; History navigates it freely.
	date  time.Time
	views []models.HabitView
	stats models.DayStats

	habitList habitlist.Model
	progress  progress.Model

	form          *huh.Form
	habitForm     *HabitFormModel
	habitToDelete int64

	statusErr string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, service *habit.Service) Model {
	m := Model{
		store:    store,
		service:  service,
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		date:     time.Now(),
		progress: progress.New(progress.WithDefaultGradient()),
	}

	m.habitList = habitlist.New(nil, 0, 0)
	m.refresh()
	return m
}

// refresh re-reads the habit views for the selected date. View state is only
// replaced when the read succeeds; a store failure keeps the prior state and
// surfaces the error in the status line.
func (m *Model) refresh() {
	views, err := m.service.Repo().ListForDate(m.date)
	if err != nil {
		m.statusErr = err.Error()
		return
	}

	m.statusErr = ""
	m.views = views
	m.stats = habit.Stats(views)
	m.habitList.SetViews(views)
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
