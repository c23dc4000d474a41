package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/daybell/internal/logger"
)

type WatchCmd struct {
	Interval time.Duration `help:"Tick interval for periodic checks." default:"15s"`
}

func (c *WatchCmd) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.Interval > time.Minute {
		// Above a minute the scheduler can skip whole clock minutes.
		return fmt.Errorf("interval must not exceed one minute")
	}
	return nil
}

// Run drives the reminder loop without the TUI, for running daybell as a
// background process.
func (c *WatchCmd) Run(cliCtx *Context) error {
	if err := cliCtx.Store.Load(); err != nil {
		return err
	}

	p := cliCtx.NewPlanner()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Watch loop started", "interval", c.Interval)
	fmt.Printf("Watching today's plan (interval %s). Ctrl+C to stop.\n", c.Interval)

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.Tick()
		case <-ctx.Done():
			logger.Info("Watch loop stopped")
			fmt.Println("Stopped.")
			return nil
		}
	}
}
