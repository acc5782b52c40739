package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/tally/internal/constants"
	"github.com/julianstephens/tally/internal/models"
)

func (s *Store) CreateHabit(name string) (models.Habit, error) {
	res, err := s.db.Exec(`INSERT INTO habits (name, streak) VALUES (?, 0)`, name)
	if err != nil {
		return models.Habit{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to read inserted habit id: %w", err)
	}

	return models.Habit{ID: id, Name: name, Streak: 0}, nil
}

func (s *Store) GetHabit(id int64) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT id, name, streak FROM habits WHERE id = ?`, id)

	var h models.Habit
	if err := row.Scan(&h.ID, &h.Name, &h.Streak); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	// Names are not unique; the earliest insertion wins, matching list order.
	row := s.db.QueryRow(`SELECT id, name, streak FROM habits WHERE name = ? ORDER BY id LIMIT 1`, name)

	var h models.Habit
	if err := row.Scan(&h.ID, &h.Name, &h.Streak); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT id, name, streak FROM habits ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Streak); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) DeleteHabit(id int64) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM master WHERE habit_id = ?`, id); err != nil {
		return false, fmt.Errorf("failed to delete completion records: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete habit: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (s *Store) GetRecordsForDay(day string) ([]models.CompletionRecord, error) {
	// Day membership is a textual prefix match on the stored timestamp.
	rows, err := s.db.Query(`
		SELECT id, habit_id, completed, completed_repeats, date
		FROM master WHERE date LIKE ? || '%' ORDER BY id`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *Store) GetRecordsForHabit(habitID int64) ([]models.CompletionRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, completed, completed_repeats, date
		FROM master WHERE habit_id = ? ORDER BY id`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]models.CompletionRecord, error) {
	var records []models.CompletionRecord
	for rows.Next() {
		var r models.CompletionRecord
		var completed int
		var date sql.NullString
		if err := rows.Scan(&r.ID, &r.HabitID, &completed, &r.CompletedRepeats, &date); err != nil {
			return nil, err
		}
		r.Completed = completed != 0
		if date.Valid {
			r.Date = date.String
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ToggleCompletion runs the whole completion/streak update as one
// transaction so the record flip and the streak adjustment cannot be
// observed half-applied.
func (s *Store) ToggleCompletion(habitID int64, target, now time.Time) (models.HabitView, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.HabitView{}, err
	}
	defer tx.Rollback()

	var h models.Habit
	err = tx.QueryRow(`SELECT id, name, streak FROM habits WHERE id = ?`, habitID).
		Scan(&h.ID, &h.Name, &h.Streak)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.HabitView{}, fmt.Errorf("habit %d: %w", habitID, sql.ErrNoRows)
		}
		return models.HabitView{}, fmt.Errorf("failed to load habit: %w", err)
	}

	day := target.Format(constants.DayFormat)
	// The stamp keeps the target's calendar day (so the record stays
	// findable by prefix) but takes the current clock time, so re-toggles
	// within the same logical day refresh the time portion.
	stamp := day + " " + now.Format("15:04:05")

	var recordID int64
	var completed int
	err = tx.QueryRow(`
		SELECT id, completed FROM master
		WHERE habit_id = ? AND date LIKE ? || '%'
		ORDER BY id LIMIT 1`, habitID, day).Scan(&recordID, &completed)

	nowCompleted := true
	switch {
	case err == sql.ErrNoRows:
		// First toggle for this day: lazily create the record as completed.
		if _, err := tx.Exec(`
			INSERT INTO master (habit_id, completed, completed_repeats, date)
			VALUES (?, 1, 0, ?)`, habitID, stamp); err != nil {
			return models.HabitView{}, fmt.Errorf("failed to insert completion record: %w", err)
		}
	case err != nil:
		return models.HabitView{}, fmt.Errorf("failed to look up completion record: %w", err)
	default:
		nowCompleted = completed == 0
		flipped := 0
		if nowCompleted {
			flipped = 1
		}
		if _, err := tx.Exec(`UPDATE master SET completed = ?, date = ? WHERE id = ?`,
			flipped, stamp, recordID); err != nil {
			return models.HabitView{}, fmt.Errorf("failed to update completion record: %w", err)
		}
	}

	if nowCompleted {
		h.Streak++
	} else if h.Streak > 0 {
		// Repeated off-toggles floor at zero, never negative.
		h.Streak--
	}

	if _, err := tx.Exec(`UPDATE habits SET streak = ? WHERE id = ?`, h.Streak, habitID); err != nil {
		return models.HabitView{}, fmt.Errorf("failed to update streak: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.HabitView{}, err
	}

	return models.HabitView{
		ID:        h.ID,
		Name:      h.Name,
		Streak:    h.Streak,
		Completed: nowCompleted,
	}, nil
}
