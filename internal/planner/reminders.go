package planner

import (
	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/logger"
	"github.com/julianstephens/daybell/internal/notifier"
	"github.com/julianstephens/daybell/internal/utils"
)

// Tick runs one round of periodic checks: due activity reminders, the daily
// planning prompt, then the day-rollover check. Firing is best-effort at tick
// granularity; a reminder may land up to one tick interval late, never early.
func (p *Planner) Tick() {
	now := p.now()
	today := utils.Today(now)
	current := utils.ClockMinute(now)

	p.fireDueReminders(today, current)
	p.fireDailyPrompt(today, current)
	p.checkDayRollover(now)
}

// fireDueReminders dispatches one notification per due activity and marks it
// notified. Marking happens even when permission is missing or dispatch
// fails: a missed reminder is not recoverable and must not fire again.
func (p *Planner) fireDueReminders(today, current string) {
	changed := false

	for i := range p.activities {
		activity := &p.activities[i]
		if !activity.IsDueAt(current) {
			continue
		}

		if p.permission == notifier.PermissionGranted {
			if err := p.dispatcher.Show(constants.ReminderTitle, activity.Text, constants.NotificationIcon); err != nil {
				logger.Warn("Reminder dispatch failed", "activity", activity.ID, "error", err)
			}
		}

		activity.Notified = true
		changed = true
	}

	if changed {
		if err := p.persist(today); err != nil {
			logger.Warn("Failed to persist plan after reminders", "date", today, "error", err)
		}
	}
}

// fireDailyPrompt sends the fixed morning planning prompt at most once per
// day. Its marker is independent of the rollover check so the two 07:30
// behaviors cannot interfere.
func (p *Planner) fireDailyPrompt(today, current string) {
	if current != constants.PlanThreshold {
		return
	}
	if p.permission != notifier.PermissionGranted {
		return
	}

	lastPrompt, err := p.store.Get(constants.KeyLastDailyPromptDate)
	if err == nil && lastPrompt == today {
		return
	}

	if err := p.dispatcher.Show(constants.DailyPromptTitle, constants.DailyPromptBody, constants.NotificationIcon); err != nil {
		logger.Warn("Daily prompt dispatch failed", "error", err)
	}

	if err := p.store.Set(constants.KeyLastDailyPromptDate, today); err != nil {
		logger.Warn("Failed to record daily prompt marker", "error", err)
	}
}
