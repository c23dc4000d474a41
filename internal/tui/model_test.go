package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/notifier"
	"github.com/julianstephens/daybell/internal/planner"
	"github.com/julianstephens/daybell/internal/storage"
)

type stubDispatcher struct {
	permission notifier.Permission
	requests   int
}

func (d *stubDispatcher) QueryPermission() notifier.Permission { return d.permission }
func (d *stubDispatcher) RequestPermission() notifier.Permission {
	d.requests++
	d.permission = notifier.PermissionGranted
	return d.permission
}
func (d *stubDispatcher) Show(title, body, icon string) error { return nil }

func newTestModel(t *testing.T, store storage.Provider, disp notifier.Dispatcher) Model {
	t.Helper()
	p := planner.New(store, disp)
	p.Init()
	return NewModel(store, p)
}

func executingStore() *storage.MemoryStore {
	store := storage.NewMemoryStore()
	store.Set(constants.KeyLastPlanDate, time.Now().Format(constants.DateFormat))
	return store
}

func TestViewShowsWelcomeInPlanningMode(t *testing.T) {
	// No lastPlanDate recorded: a fresh morning lands in planning mode once
	// past the threshold, otherwise executing with an empty plan. Either way
	// the view must render without activities.
	store := executingStore()
	store.Remove(constants.KeyLastPlanDate)

	p := planner.New(store, &stubDispatcher{permission: notifier.PermissionGranted})
	p.Init()
	m := NewModel(store, p)

	view := m.View()
	if p.Mode() == constants.ModePlanning && !strings.Contains(view, "Good morning!") {
		t.Fatal("expected planning welcome in view")
	}
	if p.Mode() == constants.ModeExecuting && !strings.Contains(view, "Today's Plan") {
		t.Fatal("expected plan list in view")
	}
}

func TestViewShowsPermissionBanner(t *testing.T) {
	m := newTestModel(t, executingStore(), &stubDispatcher{permission: notifier.PermissionDefault})

	if !strings.Contains(m.View(), "Enable notifications") {
		t.Fatal("expected permission banner when permission is default")
	}

	granted := newTestModel(t, executingStore(), &stubDispatcher{permission: notifier.PermissionGranted})
	if strings.Contains(granted.View(), "Enable notifications") {
		t.Fatal("expected no banner once granted")
	}
}

func TestViewMarksNotifiedActivities(t *testing.T) {
	store := executingStore()
	disp := &stubDispatcher{permission: notifier.PermissionGranted}
	p := planner.New(store, disp)
	p.Init()

	activity, err := p.AddActivity("Gym", "08:00")
	if err != nil {
		t.Fatalf("add activity: %v", err)
	}
	p.MarkNotified(activity.ID)

	m := NewModel(store, p)
	view := m.View()
	if !strings.Contains(view, "Gym") || !strings.Contains(view, "✓") {
		t.Fatal("expected notified activity rendered with checkmark")
	}
}

func TestInstallHintDismissalPersists(t *testing.T) {
	store := executingStore()
	m := newTestModel(t, store, &stubDispatcher{permission: notifier.PermissionGranted})

	if !strings.Contains(m.View(), "daybell-tray") {
		t.Fatal("expected install hint on first run")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = updated.(Model)

	if strings.Contains(m.View(), "daybell-tray") {
		t.Fatal("expected install hint hidden after dismissal")
	}
	if v, err := store.Get(constants.KeyInstallPromptHidden); err != nil || v != "true" {
		t.Fatalf("expected dismissal persisted, got %q (%v)", v, err)
	}

	// A fresh model over the same store never shows the hint again.
	fresh := newTestModel(t, store, &stubDispatcher{permission: notifier.PermissionGranted})
	if strings.Contains(fresh.View(), "daybell-tray") {
		t.Fatal("expected install hint suppressed across sessions")
	}
}

func TestEnableKeyRequestsPermission(t *testing.T) {
	disp := &stubDispatcher{permission: notifier.PermissionDefault}
	m := newTestModel(t, executingStore(), disp)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)

	if disp.requests != 1 {
		t.Fatalf("expected one permission request, got %d", disp.requests)
	}
	if strings.Contains(m.View(), "Enable notifications") {
		t.Fatal("expected banner gone once granted")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, executingStore(), &stubDispatcher{permission: notifier.PermissionGranted})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	if !m.quitting {
		t.Fatal("expected quitting state")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.View() != "" {
		t.Fatal("expected empty view while quitting")
	}
}
