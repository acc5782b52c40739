package models

// Habit is a tracked activity. IDs are assigned by the store and never reused.
type Habit struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}

// CompletionRecord is one dated log entry for a habit. Date holds the
// timestamp of the last write to the record, not just the calendar day it
// represents; day membership is decided by textual prefix match against
// YYYY-MM-DD.
type CompletionRecord struct {
	ID               int64  `json:"id"`
	HabitID          int64  `json:"habit_id"`
	Completed        bool   `json:"completed"`
	CompletedRepeats int    `json:"completed_repeats"`
	Date             string `json:"date"`
}

// HabitView combines a habit with its completion state for one specific day.
// It is a read model, recomputed on every change and never persisted.
type HabitView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Streak    int    `json:"streak"`
	Completed bool   `json:"completed"`
}

// DayStats are the aggregates derived from a day's habit views.
type DayStats struct {
	Total     int
	Completed int
	Percent   float64
}
