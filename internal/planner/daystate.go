package planner

import (
	"time"

	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/logger"
	"github.com/julianstephens/daybell/internal/utils"
)

// shouldPlan reports whether the user still has to plan the current day: the
// day was never started under today's date and the planning threshold has
// passed. The planning marker is read live so a StartDay from another command
// is picked up on the next evaluation.
func (p *Planner) shouldPlan(now time.Time) bool {
	if !utils.AtOrPastThreshold(now, constants.PlanThreshold) {
		return false
	}

	lastPlanDate, err := p.store.Get(constants.KeyLastPlanDate)
	if err != nil {
		// No marker recorded yet counts as "not planned today".
		return true
	}
	return lastPlanDate != utils.Today(now)
}

// enterPlanning switches into planning mode, clearing the in-memory list and
// removing any persisted plan under today's key. A stale plan can survive
// under the same date key across sessions (clock changes), so the removal is
// unconditional. Re-entering while already planning is a no-op.
func (p *Planner) enterPlanning(today string) {
	if p.mode == constants.ModePlanning {
		return
	}

	p.mode = constants.ModePlanning
	p.activities = nil
	if err := p.store.Remove(planKey(today)); err != nil {
		logger.Warn("Failed to clear stale plan", "date", today, "error", err)
	}
}

// checkDayRollover moves executing back to planning once shouldPlan becomes
// true. There is no automatic transition out of planning mode.
func (p *Planner) checkDayRollover(now time.Time) {
	if p.mode == constants.ModePlanning {
		return
	}

	if p.shouldPlan(now) {
		logger.Info("Day rolled over, entering planning mode", "date", utils.Today(now))
		p.enterPlanning(utils.Today(now))
	}
}

// StartDay records today as planned and switches to executing mode. This is
// the only way out of planning mode.
func (p *Planner) StartDay() error {
	today := utils.Today(p.now())
	if err := p.store.Set(constants.KeyLastPlanDate, today); err != nil {
		return err
	}

	p.mode = constants.ModeExecuting
	return nil
}
