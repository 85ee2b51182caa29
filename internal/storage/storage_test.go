package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp failed: %v", err)
	}
}

func TestStartAndFinishSolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Start("R U R' U'")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if id == "" {
		t.Fatal("Start returned an empty id")
	}

	if err := repo.Finish(id, "U R U' R'", 12345, 150*time.Millisecond, false); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for a known id")
	}
	if got.Solution != "U R U' R'" {
		t.Fatalf("Solution = %q, want %q", got.Solution, "U R U' R'")
	}
	if got.NodeCount != 12345 {
		t.Fatalf("NodeCount = %d, want 12345", got.NodeCount)
	}
	if got.DurationMs != 150 {
		t.Fatalf("DurationMs = %d, want 150", got.DurationMs)
	}
	if got.FinishedAt == nil {
		t.Fatal("FinishedAt should be set after Finish")
	}
}

func TestGetUnknownIDReturnsNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	got, err := repo.Get("does-not-exist")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for an unknown id")
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	first, _ := repo.Start("R U R'")
	time.Sleep(2 * time.Millisecond)
	second, _ := repo.Start("F R U'")

	solves, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(solves) != 2 {
		t.Fatalf("List returned %d rows, want 2", len(solves))
	}
	if solves[0].ID != second || solves[1].ID != first {
		t.Fatal("List did not order newest first")
	}
}
