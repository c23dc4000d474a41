package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/daybell/internal/notifier"
	"github.com/julianstephens/daybell/internal/utils"
)

type NotifyCmd struct {
	DryRun bool `help:"Print what would fire instead of sending notifications."`
}

// Run performs a single tick of the reminder checks. Intended to be invoked
// from cron or a systemd timer as an alternative to 'daybell watch'.
func (c *NotifyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	p := ctx.NewPlanner()

	if c.DryRun {
		now := time.Now()
		current := utils.ClockMinute(now)
		due := 0
		for _, activity := range p.Activities() {
			if activity.IsDueAt(current) {
				fmt.Printf("[DryRun] %s: %s\n", activity.Time, activity.Text)
				due++
			}
		}
		if due == 0 {
			fmt.Println("Nothing due this minute.")
		}
		if p.Permission() != notifier.PermissionGranted {
			fmt.Printf("Note: notification permission is %q, nothing would be delivered.\n", p.Permission())
		}
		return nil
	}

	p.Tick()
	return nil
}
