package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daybell/internal/cli"
	"github.com/julianstephens/daybell/internal/constants"
	"github.com/julianstephens/daybell/internal/errors"
	"github.com/julianstephens/daybell/internal/logger"
	"github.com/julianstephens/daybell/internal/notifier"
	"github.com/julianstephens/daybell/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path or PostgreSQL connection string. Credentials must NOT be embedded in the connection string." default:"~/.config/daybell/daybell.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init       cli.InitCmd       `cmd:"" help:"Initialize daybell storage."`
	Tui        cli.TuiCmd        `cmd:"" help:"Launch the interactive planner." default:"1"`
	Start      cli.StartCmd      `cmd:"" help:"Start the day (finish planning)."`
	Add        cli.AddCmd        `cmd:"" help:"Add an activity to today's plan."`
	Remove     cli.RemoveCmd     `cmd:"" help:"Remove an activity from today's plan."`
	Today      cli.TodayCmd      `cmd:"" help:"Show today's plan."`
	Watch      cli.WatchCmd      `cmd:"" help:"Run the reminder loop in the foreground."`
	Notify     cli.NotifyCmd     `cmd:"" hidden:"" help:"Run a single reminder check (used from cron)."`
	Permission cli.PermissionCmd `cmd:"" help:"Show or request notification permission."`
	Doctor     cli.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily activity planner with reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	// Pick the storage backend from the config value
	var store storage.Provider
	switch {
	case strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://"):
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintf(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use environment variables or a .pgpass file instead.\n")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(CLI.Config)
	case strings.HasSuffix(CLI.Config, ".json"):
		store = storage.NewJSONStore(expandHome(CLI.Config))
	default:
		store = storage.NewSQLiteStore(expandHome(CLI.Config))
	}

	configDir := filepath.Dir(expandHome(constants.DefaultConfigPath))
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:    store,
		Notifier: notifier.New(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
