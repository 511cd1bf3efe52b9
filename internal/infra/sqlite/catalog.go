// Package sqlite keeps the quiz catalog in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

const schema = `
CREATE TABLE IF NOT EXISTS animals (
    label TEXT PRIMARY KEY,
    image_ref TEXT NOT NULL,
    position INTEGER NOT NULL
);
`

type CatalogStore struct {
	db *sql.DB
}

// Open opens the database at path and ensures the schema exists.
func Open(ctx context.Context, path string) (*CatalogStore, error) {
	if path == "" {
		path = "file:animals.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &CatalogStore{db: db}, nil
}

func (s *CatalogStore) Close() error {
	return s.db.Close()
}

func (s *CatalogStore) GetAll(ctx context.Context) ([]entities.Animal, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT label, image_ref FROM animals ORDER BY position, label")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var animals []entities.Animal
	for rows.Next() {
		var a entities.Animal
		if err := rows.Scan(&a.Label, &a.ImageRef); err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}
	return animals, rows.Err()
}

// Seed upserts animals in one transaction, keeping their order.
func (s *CatalogStore) Seed(ctx context.Context, animals []entities.Animal) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO animals (label, image_ref, position) VALUES (?, ?, ?)
		ON CONFLICT(label) DO UPDATE SET image_ref = excluded.image_ref, position = excluded.position`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range animals {
		if _, err := stmt.ExecContext(ctx, a.Label, a.ImageRef, i); err != nil {
			return fmt.Errorf("seed animal %q: %w", a.Label, err)
		}
	}

	return tx.Commit()
}
