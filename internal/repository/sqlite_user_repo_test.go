package repository

import (
	"context"
	"database/sql"
	"errors"
	"greenify/internal/model"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"
)

func openTestRepo(t *testing.T) (UserRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.db")
	repo, err := OpenSQLiteUserRepo(context.Background(), path)
	if err != nil {
		t.Fatalf("open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close(context.Background()) })
	return repo, path
}

func TestUserRoundTrip(t *testing.T) {
	repo, _ := openTestRepo(t)
	ctx := context.Background()

	created := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	user := &model.User{ID: "u-1", Name: "Aysel", Email: "aysel@example.com", PasswordHash: "hash", CreatedAt: created}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "aysel@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got == nil || got.ID != "u-1" || got.Name != "Aysel" || got.PasswordHash != "hash" || !got.CreatedAt.Equal(created) {
		t.Fatalf("get by email = %+v", got)
	}

	got, err = repo.GetByID(ctx, "u-1")
	if err != nil || got == nil || got.Email != "aysel@example.com" {
		t.Fatalf("get by id = %+v, %v", got, err)
	}
}

func TestUserNotFound(t *testing.T) {
	repo, _ := openTestRepo(t)
	got, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	if err != nil || got != nil {
		t.Fatalf("get missing = %+v, %v; want nil, nil", got, err)
	}
	got, err = repo.GetByID(context.Background(), "missing")
	if err != nil || got != nil {
		t.Fatalf("get missing id = %+v, %v; want nil, nil", got, err)
	}
}

func TestDuplicateEmailIgnoresCase(t *testing.T) {
	repo, _ := openTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.User{ID: "u-1", Name: "A", Email: "eco@example.com", PasswordHash: "h", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, &model.User{ID: "u-2", Name: "B", Email: "ECO@example.com", PasswordHash: "h", CreatedAt: time.Now()})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	got, err := repo.GetByEmail(ctx, "Eco@Example.com")
	if err != nil || got == nil || got.ID != "u-1" {
		t.Fatalf("case-insensitive lookup = %+v, %v", got, err)
	}
}

func TestReopenKeepsDataAndSkipsAppliedMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.db")

	repo, err := OpenSQLiteUserRepo(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.Create(ctx, &model.User{ID: "u-1", Name: "A", Email: "a@example.com", PasswordHash: "h", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_ = repo.Close(ctx)

	repo, err = OpenSQLiteUserRepo(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer repo.Close(ctx)
	if got, _ := repo.GetByID(ctx, "u-1"); got == nil {
		t.Fatal("user lost after reopen")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := OpenSQLiteUserRepo(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestApplyMigrationsRecordsApplied(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;\n")},
		"002_b.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"notes.txt": {Data: []byte("ignored")},
	}
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := applyMigrations(ctx, db, fsys); err != nil {
			t.Fatalf("apply #%d: %v", i, err)
		}
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + migrationTable).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("applied = %d, want 2", n)
	}
}

func TestUpSection(t *testing.T) {
	got := upSection("-- +migrate Up\nCREATE TABLE x (id INT);\n-- +migrate Down\nDROP TABLE x;")
	if got != "\nCREATE TABLE x (id INT);\n" {
		t.Fatalf("up = %q", got)
	}
	if got := upSection("SELECT 1;"); got != "SELECT 1;" {
		t.Fatalf("no markers = %q", got)
	}
}
