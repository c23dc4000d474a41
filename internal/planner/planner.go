// Package planner holds the day-state and reminder logic: one long-lived
// state container over the key-value store and the notification dispatcher,
// driven by a periodic tick.
package planner

import (
	"encoding/json"
	"time"

	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/logger"
	"github.com/julianstephens/daybell/internal/models"
	"github.com/julianstephens/daybell/internal/notifier"
	"github.com/julianstephens/daybell/internal/storage"
	"github.com/julianstephens/daybell/internal/utils"
)

// Planner owns the current day's activities and mode. All access is expected
// from a single goroutine (the TUI loop or the watch loop); ticks and user
// actions interleave but never run in parallel.
type Planner struct {
	store      storage.Provider
	dispatcher notifier.Dispatcher

	now func() time.Time

	mode       constants.Mode
	activities []models.Activity
	permission notifier.Permission
	lastID     int64
}

func New(store storage.Provider, dispatcher notifier.Dispatcher) *Planner {
	return &Planner{
		store:      store,
		dispatcher: dispatcher,
		now:        time.Now,
		mode:       constants.ModeExecuting,
	}
}

// Init decides the starting mode and loads today's plan if the day has
// already been started. Storage problems degrade to an empty plan.
func (p *Planner) Init() {
	now := p.now()
	today := utils.Today(now)

	p.permission = p.dispatcher.QueryPermission()

	if p.shouldPlan(now) {
		p.enterPlanning(today)
		return
	}

	p.mode = constants.ModeExecuting
	p.activities = p.loadPlan(today)
}

// Mode returns the current planner mode.
func (p *Planner) Mode() constants.Mode {
	return p.mode
}

// Activities returns a copy of the current day's activities.
func (p *Planner) Activities() []models.Activity {
	out := make([]models.Activity, len(p.activities))
	copy(out, p.activities)
	return out
}

// Permission returns the permission state as of startup or the last request.
func (p *Planner) Permission() notifier.Permission {
	return p.permission
}

// RequestPermission runs the user-interactive permission request and caches
// the result.
func (p *Planner) RequestPermission() notifier.Permission {
	p.permission = p.dispatcher.RequestPermission()
	return p.permission
}

func planKey(date string) string {
	return constants.PlanKeyPrefix + date
}

// loadPlan reads the persisted plan for the given date. Absent or malformed
// data is treated as "no plan", never fatal.
func (p *Planner) loadPlan(date string) []models.Activity {
	raw, err := p.store.Get(planKey(date))
	if err != nil {
		if err != storage.ErrNotFound {
			logger.Warn("Failed to read stored plan", "date", date, "error", err)
		}
		return nil
	}

	var activities []models.Activity
	if err := json.Unmarshal([]byte(raw), &activities); err != nil {
		logger.Warn("Stored plan is malformed, starting empty", "date", date, "error", err)
		return nil
	}

	models.SortActivities(activities)
	return activities
}

// persist writes the full current-day list back to storage.
func (p *Planner) persist(date string) error {
	activities := p.activities
	if activities == nil {
		activities = []models.Activity{}
	}

	data, err := json.Marshal(activities)
	if err != nil {
		return err
	}

	return p.store.Set(planKey(date), string(data))
}
