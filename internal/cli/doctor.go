package cli

import (
	"fmt"

	"github.com/julianstephens/daybell/internal/keyring"
	"github.com/julianstephens/daybell/internal/notifier"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK (%s)\n", ctx.Store.GetConfigPath())
	}

	// Check 2: tray helper running
	if n, ok := ctx.Notifier.(*notifier.Notifier); ok {
		if err := n.Probe(); err != nil {
			fmt.Printf("⚠ Tray helper: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Tray helper: OK\n")
		}
	}

	// Check 3: OS keyring usable (warning only; lockfile secrets still work)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING (not available)\n")
	}

	// Check 4: permission state
	fmt.Printf("✓ Notification permission: %s\n", ctx.Notifier.QueryPermission())

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
