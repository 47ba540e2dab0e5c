package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTaskIDRequired is returned when no task id argument was given.
var ErrTaskIDRequired = errors.New("task id required")

// parseTaskID parses the single positional task id argument. Tasks are
// addressed by the server-assigned id shown in list output.
func parseTaskID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("expected a single task id, got %d arguments", len(args))
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}
