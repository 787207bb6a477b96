package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseOptionalInt converts string to *int, nil when empty or malformed
func ParseOptionalInt(value string) *int {
	if value == "" {
		return nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	return &result
}
