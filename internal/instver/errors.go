package instver

import (
	"errors"
	"fmt"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// UsageError is returned when the command is not given exactly one version string.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected exactly 1 argument, got %d", e.Got)
}

func getExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitError
}

func isUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}
