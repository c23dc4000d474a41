package cli

import "fmt"

type RemoveCmd struct {
	ID int64 `arg:"" help:"ID of the activity to remove."`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	p := ctx.NewPlanner()
	if err := p.RemoveActivity(c.ID); err != nil {
		return fmt.Errorf("failed to remove activity: %w", err)
	}

	fmt.Printf("✓ Activity %d removed\n", c.ID)
	return nil
}
