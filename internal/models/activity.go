package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/daybell/internal/constants"
)

// Activity is a single planned item for the current day. IDs are assigned at
// creation time and are unique within a plan.
type Activity struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	Time     string `json:"time"` // HH:MM format
	Notified bool   `json:"notified"`
}

func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Text) == "" {
		return fmt.Errorf("activity text cannot be empty")
	}

	if a.Time == "" {
		return fmt.Errorf("activity time cannot be empty")
	}

	// Zero-padded HH:MM only; times must compare lexicographically.
	parsed, err := time.Parse(constants.TimeFormat, a.Time)
	if err != nil || parsed.Format(constants.TimeFormat) != a.Time {
		return fmt.Errorf("invalid time format (expected HH:MM)")
	}

	return nil
}

// IsDueAt reports whether the activity should fire at the given wall-clock
// minute and has not fired before.
func (a *Activity) IsDueAt(currentTime string) bool {
	return a.Time == currentTime && !a.Notified
}

// SortActivities orders activities ascending by time. Zero-padded HH:MM
// strings compare correctly lexicographically, so no parsing is needed.
func SortActivities(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time < activities[j].Time
	})
}
