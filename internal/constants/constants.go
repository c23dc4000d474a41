package constants

import "time"

// Mode represents the current planner mode
type Mode string

const (
	AppName           = "daybell"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/daybell/daybell.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// PlanThreshold is the local time at which the daily planning prompt fires
	// and unplanned days roll over into planning mode.
	PlanThreshold = "07:30"

	// TickInterval drives all periodic checks. Reminder comparison is at minute
	// granularity, so anything well under a minute is fine.
	TickInterval = 15 * time.Second

	// Storage keys
	KeyLastPlanDate        = "lastPlanDate"
	KeyLastDailyPromptDate = "lastDailyPromptNotificationDate"
	KeyInstallPromptHidden = "installPromptDismissed"
	KeyPermission          = "notificationPermission"
	PlanKeyPrefix          = "plan-"

	// Notification content
	ReminderTitle    = "Activity Reminder!"
	DailyPromptTitle = "Time to plan your day!"
	DailyPromptBody  = "Good morning! What are your goals for today?"
	NotificationIcon = "daybell"

	// Tray notifier constants
	NotifierLockfileName   = "daybell-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.daybell"
	TrayExecutablePrefix   = "daybell-tray"

	// Mode constants
	ModePlanning  Mode = "planning"
	ModeExecuting Mode = "executing"
)
