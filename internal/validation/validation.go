// Package validation checks user-supplied input before it reaches storage.
package validation

import (
	"fmt"
	"strings"
	"time"
)

// MaxHabitNameLen keeps names renderable in list rows.
const MaxHabitNameLen = 100

// HabitName trims the name and rejects empty or oversized results. The
// trimmed name is what gets persisted.
func HabitName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("habit name cannot be empty")
	}
	if len(trimmed) > MaxHabitNameLen {
		return "", fmt.Errorf("habit name cannot exceed %d characters", MaxHabitNameLen)
	}
	return trimmed, nil
}

// Day parses a YYYY-MM-DD date argument.
func Day(day string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	return t, nil
}
