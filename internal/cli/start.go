package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/daybell/internal/utils"
)

type StartCmd struct{}

func (c *StartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	p := ctx.NewPlanner()
	if err := p.StartDay(); err != nil {
		return fmt.Errorf("failed to start day: %w", err)
	}

	fmt.Printf("✓ Day started for %s\n", utils.Today(time.Now()))
	return nil
}
