package habit

import (
	"database/sql"
	"errors"
	"time"

	"github.com/julianstephens/tally/internal/models"
	"github.com/julianstephens/tally/internal/storage"
)

// Service runs the completion/streak protocol on top of the repository.
type Service struct {
	repo  *Repository
	store storage.Provider
	now   func() time.Time
}

func NewService(store storage.Provider) *Service {
	return &Service{
		repo:  NewRepository(store),
		store: store,
		now:   time.Now,
	}
}

// Repo exposes the repository for read and CRUD operations.
func (s *Service) Repo() *Repository {
	return s.repo
}

// Toggle flips the completion state of the habit for the calendar day of
// target and adjusts the streak: +1 when the day becomes completed, -1
// (floored at zero) when it becomes incomplete. The streak is a cumulative
// toggle counter shared across all days of the habit, not a consecutive-days
// computation. The record flip and the streak write commit atomically.
func (s *Service) Toggle(habitID int64, target time.Time) (models.HabitView, error) {
	view, err := s.store.ToggleCompletion(habitID, target, s.now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HabitView{}, ErrNotFound
		}
		return models.HabitView{}, &StoreError{Op: "toggle completion", Err: err}
	}
	return view, nil
}

// Stats derives the day aggregates from a habit view slice. It is a pure
// function; the TUI recomputes it on every change instead of caching.
func Stats(views []models.HabitView) models.DayStats {
	stats := models.DayStats{Total: len(views)}
	for _, v := range views {
		if v.Completed {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.Percent = float64(stats.Completed) / float64(stats.Total)
	}
	return stats
}
