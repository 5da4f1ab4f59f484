package core

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError reports input the simulator refuses to run with.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateProcesses checks pids are present and unique, arrivals are
// non-negative and bursts positive.
func ValidateProcesses(processes []Process) error {
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		field := fmt.Sprintf("processes[%d]", i)
		if p.Pid == "" {
			return NewValidationError(field+".pid", "must not be empty")
		}
		if _, ok := seen[p.Pid]; ok {
			return NewValidationError(field+".pid", "duplicate pid %q", p.Pid)
		}
		seen[p.Pid] = struct{}{}
		if p.ArrivalTime < 0 {
			return NewValidationError(field+".arrival_time", "must be >= 0, got %d", p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return NewValidationError(field+".burst_time", "must be > 0, got %d", p.BurstTime)
		}
	}
	return nil
}
