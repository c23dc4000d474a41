package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/planner"
	"github.com/julianstephens/daybell/internal/storage"
)

// ActivityFormModel backs the huh add-activity form.
type ActivityFormModel struct {
	Text string
	Time string
}

type Model struct {
	store   storage.Provider
	planner *planner.Planner

	keys KeyMap
	help help.Model

	form         *huh.Form
	activityForm *ActivityFormModel
	adding       bool

	cursor          int
	width           int
	height          int
	quitting        bool
	formError       string
	installHintDone bool
}

// TickMsg carries one firing of the periodic timer driving all time checks.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(constants.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func NewModel(store storage.Provider, p *planner.Planner) Model {
	hintDone := false
	if v, err := store.Get(constants.KeyInstallPromptHidden); err == nil && v == "true" {
		hintDone = true
	}

	return Model{
		store:           store,
		planner:         p,
		keys:            DefaultKeyMap(),
		help:            help.New(),
		installHintDone: hintDone,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Quit, m.keys.Help}
	if m.planner.Mode() == constants.ModePlanning {
		keys = append(keys, m.keys.Add, m.keys.Start)
	} else {
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Quit, m.keys.Help, m.keys.Enable, m.keys.Hide}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	actions := []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Start}
	return [][]key.Binding{global, navigation, actions}
}
