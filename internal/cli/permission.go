package cli

import "fmt"

type PermissionCmd struct {
	Request bool `help:"Request notification permission instead of just showing it."`
}

func (c *PermissionCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Request {
		result := ctx.Notifier.RequestPermission()
		fmt.Printf("Notification permission: %s\n", result)
		return nil
	}

	fmt.Printf("Notification permission: %s\n", ctx.Notifier.QueryPermission())
	return nil
}
