package constants

const (
	AppName           = "stride"
	DefaultConfigPath = "~/.config/stride/stride.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "stride-"

	// DefaultStrugglingThreshold is the percent-of-own-longest-streak cutoff
	// below which a habit counts as struggling.
	DefaultStrugglingThreshold = 50.0

	// Trailing windows for completion-rate and best-weekday analytics.
	RateWindowDays = 30
	BestDayWeeks   = 4
)
