package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func setupSQLiteStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stride.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE habits (name TEXT PRIMARY KEY, periodicity TEXT)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO habits VALUES ('Exercise', 'daily')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return path
}

func setupJSONStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stride.json")
	if err := os.WriteFile(path, []byte(`{"version":1,"habits":{}}`), 0600); err != nil {
		t.Fatalf("failed to write test store: %v", err)
	}
	return path
}

func TestCreateBackup_SQLite(t *testing.T) {
	path := setupSQLiteStore(t)

	mgr := NewManager(path)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", backupPath)
	}
	if filepath.Ext(backupPath) != ".db" {
		t.Errorf("backup extension = %s, want .db", filepath.Ext(backupPath))
	}

	// Backup must be a readable database with the data intact.
	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		t.Fatalf("failed to open backup: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("backup is not a valid database: %v", err)
	}
	if count != 1 {
		t.Errorf("backup has %d habits, want 1", count)
	}
}

func TestCreateBackup_JSON(t *testing.T) {
	path := setupJSONStore(t)

	mgr := NewManager(path)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup extension = %s, want .json", filepath.Ext(backupPath))
	}

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading original failed: %v", err)
	}
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("reading backup failed: %v", err)
	}
	if string(original) != string(copied) {
		t.Error("JSON backup content differs from original")
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail when the store does not exist")
	}
}

func TestListBackups(t *testing.T) {
	path := setupJSONStore(t)
	mgr := NewManager(path)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups before any were created", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("got %d backups, want 2", len(backups))
	}
	for _, b := range backups {
		if b.Size == 0 {
			t.Errorf("backup %s reports zero size", b.Path)
		}
		if b.Timestamp.IsZero() {
			t.Errorf("backup %s has no parsed timestamp", b.Path)
		}
	}
}

func TestRotateBackups(t *testing.T) {
	path := setupJSONStore(t)
	mgr := NewManager(path)

	// Plant more fake backups than the retention limit allows, with
	// distinct minute-precision timestamps.
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("stride-202401%02d-1200.json", i+1)
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("writing fake backup failed: %v", err)
		}
	}

	if err := mgr.rotateBackups(); err != nil {
		t.Fatalf("rotateBackups failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 14 {
		t.Errorf("got %d backups after rotation, want 14", len(backups))
	}
	// The newest timestamps survive.
	if backups[0].Timestamp.Day() != 20 {
		t.Errorf("newest backup day = %d, want 20", backups[0].Timestamp.Day())
	}
}

func TestRestoreBackup(t *testing.T) {
	path := setupJSONStore(t)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Change the store, then restore the old content.
	if err := os.WriteFile(path, []byte(`{"version":1,"habits":{"Exercise":{}}}`), 0600); err != nil {
		t.Fatalf("modifying store failed: %v", err)
	}
	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading restored store failed: %v", err)
	}
	if string(data) != `{"version":1,"habits":{}}` {
		t.Errorf("restored content = %s", data)
	}
}

func TestRestoreBackup_MissingFile(t *testing.T) {
	mgr := NewManager(setupJSONStore(t))
	if err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("RestoreBackup should fail for a missing backup file")
	}
}
