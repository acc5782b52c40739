package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)

	fs := fstest.MapFS{
		"001_init.sql":   {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
		"002_second.sql": {Data: []byte(`CREATE TABLE b (id INTEGER PRIMARY KEY);`)},
	}

	runner := NewRunner(db, fs)
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("failed to read version: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Re-applying is a no-op
	applied, err = runner.Apply(nil)
	if err != nil {
		t.Fatalf("re-apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("re-apply applied = %d, want 0", applied)
	}
}

func TestApplyPartialUpgrade(t *testing.T) {
	db := openTestDB(t)

	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
	})
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	// A newer binary ships one more migration; only it should run.
	runner = NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
		"002_more.sql": {Data: []byte(`CREATE TABLE b (id INTEGER PRIMARY KEY);`)},
	})
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
}

func TestInvalidFilename(t *testing.T) {
	db := openTestDB(t)

	runner := NewRunner(db, fstest.MapFS{
		"init.sql": {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
	})
	if _, err := runner.Apply(nil); err == nil {
		t.Error("expected error for filename without version prefix")
	}
}

func TestDuplicateVersion(t *testing.T) {
	db := openTestDB(t)

	runner := NewRunner(db, fstest.MapFS{
		"001_one.sql": {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
		"001_two.sql": {Data: []byte(`CREATE TABLE b (id INTEGER PRIMARY KEY);`)},
	})
	if _, err := runner.ReadMigrations(); err == nil {
		t.Error("expected error for duplicate migration version")
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)

	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
		"002_more.sql": {Data: []byte(`CREATE TABLE b (id INTEGER PRIMARY KEY);`)},
	})
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	// An older binary only knows about migration 1
	old := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte(`CREATE TABLE a (id INTEGER PRIMARY KEY);`)},
	})
	if err := old.ValidateVersion(); err == nil {
		t.Error("expected error validating against newer schema")
	}
}
