package storage

import (
	"time"

	"github.com/julianstephens/tally/internal/models"
)

// Provider is the persistence boundary. It is injected into the habit
// service and the TUI rather than held as process-global state.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	CreateHabit(name string) (models.Habit, error)
	GetHabit(id int64) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	// DeleteHabit removes the habit and all of its completion records in one
	// transaction. Deleting an unknown id reports deleted=false, not an error.
	DeleteHabit(id int64) (deleted bool, err error)

	// Completion log
	GetRecordsForDay(day string) ([]models.CompletionRecord, error)
	GetRecordsForHabit(habitID int64) ([]models.CompletionRecord, error)
	// ToggleCompletion flips the completion record for the habit on the
	// calendar day of target (creating it completed if absent), adjusts the
	// streak, and persists both in a single transaction. now supplies the
	// timestamp stamped on the record. Returns sql.ErrNoRows (wrapped) when
	// the habit does not exist.
	ToggleCompletion(habitID int64, target, now time.Time) (models.HabitView, error)

	// Utils
	GetConfigPath() string
}
