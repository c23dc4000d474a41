package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/notifier"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.adding {
		return docStyle.Render(m.form.View())
	}

	var sections []string

	if m.planner.Permission() == notifier.PermissionDefault {
		sections = append(sections, bannerStyle.Render("🔔 Enable notifications to get reminders! Press n"))
	}

	if m.planner.Mode() == constants.ModePlanning {
		sections = append(sections, m.welcomeView())
	} else {
		sections = append(sections, m.plannerView())
	}

	if m.formError != "" {
		sections = append(sections, errorStyle.Render(m.formError))
	}

	if !m.installHintDone {
		sections = append(sections, hintStyle.Render("Tip: install daybell-tray for desktop notifications (x to dismiss)"))
	}

	sections = append(sections, m.help.View(m))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) welcomeView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Good morning!"),
		welcomeStyle.Render("What are your goals for today?"),
		hintStyle.Render("a: add activities · enter: start the day"),
	)
}

func (m Model) plannerView() string {
	activities := m.planner.Activities()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Today's Plan"))
	b.WriteString("\n")

	if len(activities) == 0 {
		b.WriteString(hintStyle.Render("Nothing planned yet. Press a to add an activity."))
		return b.String()
	}

	for i, activity := range activities {
		line := fmt.Sprintf("%s  %s", timeStyle.Render(activity.Time), activity.Text)
		if activity.Notified {
			line = notifiedStyle.Render(fmt.Sprintf("%s  %s ✓", activity.Time, activity.Text))
		}
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
