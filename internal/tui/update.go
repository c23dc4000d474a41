package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/utils"
)

func newActivityForm(fm *ActivityFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("activity text cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Time (HH:MM)").
				Value(&fm.Time).
				Validate(func(s string) error {
					if !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("invalid time format (expected HH:MM)")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The add form owns input while it is open
	if m.adding {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.adding = false
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if _, err := m.planner.AddActivity(m.activityForm.Text, m.activityForm.Time); err != nil {
				m.formError = fmt.Sprintf("Failed to add activity: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.adding = false
		case huh.StateAborted:
			m.adding = false
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case TickMsg:
		m.planner.Tick()
		cmds = append(cmds, tick())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Add):
			m.activityForm = &ActivityFormModel{}
			m.form = newActivityForm(m.activityForm)
			m.adding = true
			cmds = append(cmds, m.form.Init())

		case key.Matches(msg, m.keys.Start):
			if m.planner.Mode() == constants.ModePlanning {
				if err := m.planner.StartDay(); err != nil {
					m.formError = fmt.Sprintf("Failed to start day: %v", err)
				}
			}

		case key.Matches(msg, m.keys.Delete):
			activities := m.planner.Activities()
			if m.cursor < len(activities) {
				if err := m.planner.RemoveActivity(activities[m.cursor].ID); err != nil {
					m.formError = fmt.Sprintf("Failed to remove activity: %v", err)
				}
				if m.cursor > 0 && m.cursor >= len(activities)-1 {
					m.cursor--
				}
			}

		case key.Matches(msg, m.keys.Enable):
			m.planner.RequestPermission()

		case key.Matches(msg, m.keys.Hide):
			if !m.installHintDone {
				m.installHintDone = true
				// Once-ever dismissal
				_ = m.store.Set(constants.KeyInstallPromptHidden, "true")
			}

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.planner.Activities())-1 {
				m.cursor++
			}
		}
	}

	return m, tea.Batch(cmds...)
}
