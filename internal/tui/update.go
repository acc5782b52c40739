package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tally/internal/logger"
	"github.com/julianstephens/tally/internal/tui/components/habitlist"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-8)
		m.progress.Width = msg.Width - 8
	}

	// Handle Add Habit State
	if m.state == StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = m.previousState
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if _, err := m.service.Repo().Create(m.habitForm.Name); err == nil {
				m.refresh()
				m.state = m.previousState
			} else {
				// Stay in the form so the user can correct or cancel
				m.statusErr = err.Error()
				m.form.State = huh.StateNormal
			}
		case huh.StateAborted:
			m.state = m.previousState
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.service.Repo().Delete(m.habitToDelete); err != nil {
					m.statusErr = err.Error()
					logger.Error("Failed to delete habit", "id", m.habitToDelete, "error", err)
				} else {
					m.refresh()
				}
				m.state = m.previousState
			case "n", "N", "esc", "q":
				m.state = m.previousState
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == StateToday {
				m.state = StateHistory
			} else {
				m.state = StateToday
				m.date = time.Now()
			}
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Left):
			if m.state == StateHistory {
				m.date = m.date.AddDate(0, 0, -1)
				m.refresh()
				return m, nil
			}
		case key.Matches(msg, m.keys.Right):
			if m.state == StateHistory {
				m.date = m.date.AddDate(0, 0, 1)
				m.refresh()
				return m, nil
			}
		case key.Matches(msg, m.keys.Today):
			if m.state == StateHistory {
				m.date = time.Now()
				m.refresh()
				return m, nil
			}
		}

	case habitlist.AddHabitMsg:
		m.previousState = m.state
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		// No optimistic mutation: the list is re-read only after the
		// transaction commits.
		if _, err := m.service.Toggle(msg.ID, m.date); err != nil {
			m.statusErr = err.Error()
			logger.Error("Failed to toggle habit", "id", msg.ID, "error", err)
		} else {
			m.refresh()
		}
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.previousState = m.state
		m.habitToDelete = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
