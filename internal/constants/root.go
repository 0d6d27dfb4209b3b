package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "habitix"
	Version            = "v0.2.0"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitix/habitix.json"

	// StateKey is the key the application document is stored under in
	// key-value backed stores.
	StateKey = "habitixApp"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the format for month arguments (YYYY-MM)
	MonthFormat = "2006-01"

	// XP awards
	HabitXP   = 10
	JournalXP = 20

	// XPPerLevel scales the next-level threshold: level * XPPerLevel
	XPPerLevel = 100

	// DefaultOccasionColor is the marker color used when no color is picked
	DefaultOccasionColor = "#3b82f6"

	// DefaultUser is the display name before anyone signs up
	DefaultUser = "User"

	// Untitled is the fallback title for journal entries saved without one
	Untitled = "Untitled"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitix-"

	// Session States
	StateDashboard SessionState = iota
	StateJournal
	StateAnalytics
	StateCalendar
	StateAddHabit
	StateAddEntry
	StateViewEntry
	StateAddOccasion
)
