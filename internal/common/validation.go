package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateInteger validates that a string holds a base-10 integer
func ValidateInteger(value string) error {
	if _, err := ParseInteger(value); err != nil {
		return err
	}
	return nil
}

// ParseInteger parses a base-10 integer, ignoring surrounding whitespace
func ParseInteger(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("value cannot be empty")
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %s", value)
	}
	return n, nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}
