package sqlite

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func mustDate(t *testing.T, day string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("bad test date %s: %v", day, err)
	}
	return d
}

func TestCreateAndListHabits(t *testing.T) {
	store := setupTestStore(t)

	first, err := store.CreateHabit("Drink water")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected a store-assigned id")
	}
	if first.Streak != 0 {
		t.Errorf("new habit streak = %d, want 0", first.Streak)
	}

	second, err := store.CreateHabit("Read")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}

	habits, err := store.GetAllHabits()
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(habits) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(habits))
	}
	// Insertion order
	if habits[0].Name != "Drink water" || habits[1].Name != "Read" {
		t.Errorf("unexpected order: %q, %q", habits[0].Name, habits[1].Name)
	}
}

func TestToggleCompletionCreatesAndFlipsRecord(t *testing.T) {
	store := setupTestStore(t)

	h, err := store.CreateHabit("Meditate")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	day := mustDate(t, "2026-08-20")
	now := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)

	view, err := store.ToggleCompletion(h.ID, day, now)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !view.Completed || view.Streak != 1 {
		t.Errorf("after first toggle: completed=%v streak=%d, want true/1", view.Completed, view.Streak)
	}

	records, err := store.GetRecordsForDay("2026-08-20")
	if err != nil {
		t.Fatalf("failed to read records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Date != "2026-08-20 09:30:00" {
		t.Errorf("record date = %q, want target day with clock time", records[0].Date)
	}

	// Second toggle at a later real-world moment updates the same record in
	// place instead of creating a second one.
	later := time.Date(2026, 8, 20, 21, 5, 0, 0, time.UTC)
	view, err = store.ToggleCompletion(h.ID, day, later)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if view.Completed || view.Streak != 0 {
		t.Errorf("after second toggle: completed=%v streak=%d, want false/0", view.Completed, view.Streak)
	}

	records, err = store.GetRecordsForDay("2026-08-20")
	if err != nil {
		t.Fatalf("failed to read records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after re-toggle, got %d", len(records))
	}
	if records[0].Date != "2026-08-20 21:05:00" {
		t.Errorf("record date = %q, want refreshed time portion", records[0].Date)
	}
}

func TestToggleUnknownHabit(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.ToggleCompletion(999, time.Now(), time.Now())
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows for unknown habit, got %v", err)
	}
}

func TestStreakFloorsAtZero(t *testing.T) {
	store := setupTestStore(t)

	h, err := store.CreateHabit("Stretch")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	day := mustDate(t, "2026-08-20")
	now := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	if _, err := store.ToggleCompletion(h.ID, day, now); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	// Force the pathological state: a completed record while the streak is
	// already zero. The following off-toggle must not go negative.
	if _, err := store.GetDB().Exec("UPDATE habits SET streak = 0 WHERE id = ?", h.ID); err != nil {
		t.Fatalf("failed to force streak: %v", err)
	}

	view, err := store.ToggleCompletion(h.ID, day, now)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if view.Completed {
		t.Error("expected record to be incomplete after off-toggle")
	}
	if view.Streak != 0 {
		t.Errorf("streak = %d, want floor at 0", view.Streak)
	}
}

func TestDeleteHabitCascades(t *testing.T) {
	store := setupTestStore(t)

	h, err := store.CreateHabit("Journal")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	for _, day := range []string{"2026-08-18", "2026-08-19", "2026-08-20"} {
		d := mustDate(t, day)
		if _, err := store.ToggleCompletion(h.ID, d, d.Add(10*time.Hour)); err != nil {
			t.Fatalf("toggle for %s failed: %v", day, err)
		}
	}

	deleted, err := store.DeleteHabit(h.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected deleted=true for existing habit")
	}

	// No orphaned completion records may remain
	records, err := store.GetRecordsForHabit(h.ID)
	if err != nil {
		t.Fatalf("failed to read records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records after cascade delete, got %d", len(records))
	}

	// Idempotent: deleting again is not an error
	deleted, err = store.DeleteHabit(h.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for missing habit")
	}
}

func TestGetRecordsForDayPrefixMatch(t *testing.T) {
	store := setupTestStore(t)

	h, err := store.CreateHabit("Walk")
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	d1 := mustDate(t, "2026-08-19")
	d2 := mustDate(t, "2026-08-20")
	if _, err := store.ToggleCompletion(h.ID, d1, d1.Add(7*time.Hour)); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if _, err := store.ToggleCompletion(h.ID, d2, d2.Add(22*time.Hour)); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	records, err := store.GetRecordsForDay("2026-08-19")
	if err != nil {
		t.Fatalf("failed to read records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record for 2026-08-19, got %d", len(records))
	}
	if records[0].HabitID != h.ID || !records[0].Completed {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestLoadWithoutInitFails(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.db")
	store := NewStore(dbPath)

	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}
