package planner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinLeaves and MaxLeaves bound the accepted leave count
	MinLeaves = 1
	MaxLeaves = 30

	// DefaultLeaves is used when the caller does not ask for a count
	DefaultLeaves = 14
)

var (
	// ErrInvalidLeaveCount is returned for a non-numeric or out of range leave count
	ErrInvalidLeaveCount = errors.New("leave count must be an integer between 1 and 30")

	// ErrInvalidRange is returned when a scan starts after it ends
	ErrInvalidRange = errors.New("start date is after end date")
)

// ValidateLeaveCount checks n against [MinLeaves, MaxLeaves]
func ValidateLeaveCount(n int) error {
	if n < MinLeaves || n > MaxLeaves {
		return fmt.Errorf("%w: got %d", ErrInvalidLeaveCount, n)
	}
	return nil
}

// ParseLeaveCount parses and validates user input. Empty input means DefaultLeaves.
func ParseLeaveCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLeaves, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidLeaveCount, raw)
	}
	if err := ValidateLeaveCount(n); err != nil {
		return 0, err
	}
	return n, nil
}
