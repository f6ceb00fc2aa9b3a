package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
		m.habitList.SetSize(size.Width, size.Height-4)
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.sort = (m.sort + 1) % SortMode(len(sortTitles))
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.sort = (m.sort - 1 + SortMode(len(sortTitles))) % SortMode(len(sortTitles))
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.AdvanceStatusMsg:
		if h, ok := m.store.Get(m.user, msg.ID); ok {
			next := nextStatus(h.Status)
			m.store.UpdateStatus(m.user, h.ID, next)
			m.status = fmt.Sprintf("%s is now %s", h.Name, next)
			m.refresh()
		}
		return m, nil

	case habitlist.MarkDoneMsg:
		if m.store.MarkCompleted(m.user, msg.ID, m.now()) {
			m.status = fmt.Sprintf("Marked #%d done for %s", msg.ID, m.now().Format(constants.DateFormat))
			if m.journal != nil {
				m.status += fmt.Sprintf(" (streak %d)", m.journal.Streak(msg.ID, m.now()))
			}
			m.refresh()
		}
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDelete = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case habitlist.FinishAllMsg:
		if m.store.SetAllFinished(m.user) {
			m.status = "Every habit is " + models.StatusFinished.String()
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateList
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.addHabit(m.habitForm.Name, m.habitForm.Description)
		m.state = StateList
		return m, nil
	case huh.StateAborted:
		m.state = StateList
		return m, nil
	}
	return m, cmd
}

func (m *Model) addHabit(name, description string) {
	habit := models.Habit{
		Name:        trimmed(name),
		Description: trimmed(description),
	}
	m.store.Add(m.user, &habit)
	m.status = fmt.Sprintf("Added habit #%d: %s", habit.ID, habit.Name)
	m.refresh()
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		if m.store.Delete(m.user, m.habitToDelete) {
			m.status = fmt.Sprintf("Deleted habit #%d", m.habitToDelete)
		}
		m.refresh()
		m.state = StateList
	case key.Matches(keyMsg, m.keys.Cancel):
		m.state = StateList
	}
	return m, nil
}
