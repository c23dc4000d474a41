package planner

import (
	"strings"

	"github.com/julianstephens/daybell/internal/models"
	"github.com/julianstephens/daybell/internal/utils"
)

// nextID assigns a fresh activity id from the wall clock, bumped past the
// previous id so same-millisecond adds stay unique.
func (p *Planner) nextID() int64 {
	id := p.now().UnixMilli()
	if id <= p.lastID {
		id = p.lastID + 1
	}
	p.lastID = id
	return id
}

// AddActivity validates, appends, re-sorts, and persists. Empty text or a
// malformed time is rejected here even though the input boundary also checks.
func (p *Planner) AddActivity(text, timeStr string) (models.Activity, error) {
	activity := models.Activity{
		ID:   p.nextID(),
		Text: strings.TrimSpace(text),
		Time: timeStr,
	}

	if err := activity.Validate(); err != nil {
		return models.Activity{}, err
	}

	p.activities = append(p.activities, activity)
	models.SortActivities(p.activities)

	if err := p.persist(utils.Today(p.now())); err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

// RemoveActivity filters out the given id. Removing an unknown id is a no-op.
func (p *Planner) RemoveActivity(id int64) error {
	kept := p.activities[:0]
	removed := false
	for _, activity := range p.activities {
		if activity.ID == id {
			removed = true
			continue
		}
		kept = append(kept, activity)
	}
	p.activities = kept

	if !removed {
		return nil
	}
	return p.persist(utils.Today(p.now()))
}

// MarkNotified flips the matching activity's notified flag to true. Already
// notified or unknown ids are no-ops; the flag never reverts.
func (p *Planner) MarkNotified(id int64) error {
	for i := range p.activities {
		if p.activities[i].ID != id || p.activities[i].Notified {
			continue
		}
		p.activities[i].Notified = true
		return p.persist(utils.Today(p.now()))
	}
	return nil
}
