package cli

import (
	"fmt"

	"github.com/delford/twophase-cube/internal/storage"
)

var dbPath string

func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if dbPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(dbPath)
	}
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history database: %w", err)
	}

	return db, nil
}

func solveRepo(db *storage.DB) *storage.SolveRepository {
	return storage.NewSolveRepository(db)
}
