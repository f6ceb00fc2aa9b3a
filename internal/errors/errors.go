package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/habits/internal/logger"
)

// Session command failures. The store itself never fails; these are raised by
// the console layer when a lookup it depends on comes back empty.
var (
	ErrNoActiveUser  = stderrors.New("no active user")
	ErrUnknownUser   = stderrors.New("unknown user")
	ErrDuplicateUser = stderrors.New("user already exists")
	ErrHabitNotFound = stderrors.New("habit not found")
)

var hints = map[error]string{
	ErrNoActiveUser:  "run 'user add <name>' or 'user use <name>' first",
	ErrUnknownUser:   "run 'user list' to see registered users",
	ErrHabitNotFound: "run 'list' to see habit ids",
}

// Hint returns a follow-up suggestion for a known session error, or "".
func Hint(err error) string {
	for target, hint := range hints {
		if stderrors.Is(err, target) {
			return hint
		}
	}
	return ""
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	if hint := Hint(err); hint != "" {
		return fmt.Sprintf("Error: %v (%s)", err, hint)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
