// Package habit holds the habit domain logic: the repository that merges
// habits with a day's completion state and the service that runs the
// toggle/streak protocol.
package habit

import (
	"database/sql"
	"errors"
	"time"

	"github.com/julianstephens/tally/internal/constants"
	"github.com/julianstephens/tally/internal/models"
	"github.com/julianstephens/tally/internal/storage"
	"github.com/julianstephens/tally/internal/validation"
)

// Repository translates store rows into habit read models for a given day.
type Repository struct {
	store storage.Provider
}

func NewRepository(store storage.Provider) *Repository {
	return &Repository{store: store}
}

// ListForDate returns every habit merged with its completion state for the
// calendar day of date. Habits with no record for that day are not completed.
// Order is store insertion order.
func (r *Repository) ListForDate(date time.Time) ([]models.HabitView, error) {
	habits, err := r.store.GetAllHabits()
	if err != nil {
		return nil, &StoreError{Op: "list habits", Err: err}
	}

	day := date.Format(constants.DayFormat)
	records, err := r.store.GetRecordsForDay(day)
	if err != nil {
		return nil, &StoreError{Op: "list completion records", Err: err}
	}

	completed := make(map[int64]bool, len(records))
	for _, rec := range records {
		completed[rec.HabitID] = rec.Completed
	}

	views := make([]models.HabitView, 0, len(habits))
	for _, h := range habits {
		views = append(views, models.HabitView{
			ID:        h.ID,
			Name:      h.Name,
			Streak:    h.Streak,
			Completed: completed[h.ID],
		})
	}

	return views, nil
}

// Create validates the name and inserts a habit with streak 0. A name that is
// empty after trimming fails with *ValidationError and writes nothing.
func (r *Repository) Create(name string) (models.Habit, error) {
	trimmed, err := validation.HabitName(name)
	if err != nil {
		return models.Habit{}, &ValidationError{Field: "name", Reason: err.Error()}
	}

	h, err := r.store.CreateHabit(trimmed)
	if err != nil {
		return models.Habit{}, &StoreError{Op: "create habit", Err: err}
	}
	return h, nil
}

// Delete removes the habit and all of its completion records. Deleting an
// unknown id is a no-op.
func (r *Repository) Delete(id int64) error {
	if _, err := r.store.DeleteHabit(id); err != nil {
		return &StoreError{Op: "delete habit", Err: err}
	}
	return nil
}

// Get returns a single habit, mapping a missing row to ErrNotFound.
func (r *Repository) Get(id int64) (models.Habit, error) {
	h, err := r.store.GetHabit(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, ErrNotFound
		}
		return models.Habit{}, &StoreError{Op: "get habit", Err: err}
	}
	return h, nil
}

// GetByName resolves a habit by display name, mapping a missing row to
// ErrNotFound.
func (r *Repository) GetByName(name string) (models.Habit, error) {
	h, err := r.store.GetHabitByName(name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, ErrNotFound
		}
		return models.Habit{}, &StoreError{Op: "get habit by name", Err: err}
	}
	return h, nil
}
