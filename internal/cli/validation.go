package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUsage marks malformed command lines.
var ErrUsage = errors.New("usage")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// parseRunID accepts a history run ID as printed by `tsclean history`.
func parseRunID(arg string) (int64, error) {
	trimmed := strings.TrimPrefix(arg, "#")
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err == nil && id > 0 {
		return id, nil
	}

	// Looks like a negative or zero number
	if matched, _ := regexp.MatchString(`^-?\d+$`, trimmed); matched {
		return 0, usageErrorf("invalid run ID '%s'. Run IDs start at 1", arg)
	}

	return 0, usageErrorf("invalid run ID '%s'. Expected a number from 'tsclean history'", arg)
}
