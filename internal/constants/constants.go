package constants

const (
	AppName = "habits"

	// DateFormat is used for completion days and user-facing dates
	DateFormat = "2006-01-02"
	// DateTimeFormat is used when printing creation timestamps
	DateTimeFormat = "2006-01-02 15:04"

	DefaultPrompt       = "habits> "
	DefaultLogDir       = "~/.local/state/habits"
	DefaultLogFile      = "habits.log"
	DefaultLogMaxSizeMB = 10
	DefaultLogBackups   = 3
	DefaultLogMaxAge    = 28 // days
)
