package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	p := ctx.NewPlanner()

	fmt.Printf("Plan for %s (%s mode)\n", utils.Today(time.Now()), p.Mode())

	if p.Mode() == constants.ModePlanning {
		fmt.Println("The day has not been started yet. Run 'daybell start' once it is planned.")
	}

	activities := p.Activities()
	if len(activities) == 0 {
		fmt.Println("No activities planned.")
		return nil
	}

	for _, activity := range activities {
		mark := " "
		if activity.Notified {
			mark = "✓"
		}
		fmt.Printf("  %s %s  %s (id %d)\n", mark, activity.Time, activity.Text, activity.ID)
	}

	return nil
}
