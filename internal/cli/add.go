package cli

import (
	"fmt"

	"github.com/julianstephens/daybell/internal/utils"
)

type AddCmd struct {
	Text string `arg:"" help:"Activity description."`
	Time string `help:"Time for the activity (HH:MM)." required:""`
}

func (c *AddCmd) Validate() error {
	if !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", c.Time)
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	p := ctx.NewPlanner()
	activity, err := p.AddActivity(c.Text, c.Time)
	if err != nil {
		return fmt.Errorf("failed to add activity: %w", err)
	}

	fmt.Printf("✓ Activity added: %s at %s (id %d)\n", activity.Text, activity.Time, activity.ID)
	return nil
}
