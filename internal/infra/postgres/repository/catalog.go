package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/animal-quiz-bot/internal/infra/postgres"
)

const schema = `
	CREATE TABLE IF NOT EXISTS animals (
		label     TEXT PRIMARY KEY,
		image_ref TEXT NOT NULL,
		position  INTEGER NOT NULL
	)
`

// TxRunner runs fn in a transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// CatalogRepository provides access to the quiz animals stored in PostgreSQL.
type CatalogRepository struct {
	db postgres.DBTX
	tx TxRunner
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(db postgres.DBTX, tx TxRunner) *CatalogRepository {
	return &CatalogRepository{db: db, tx: tx}
}

// EnsureSchema creates the animals table if it does not exist.
func (r *CatalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure animals schema: %w", err)
	}
	return nil
}

// GetAll returns the catalog in its stored order.
func (r *CatalogRepository) GetAll(ctx context.Context) ([]entities.Animal, error) {
	query := `
		SELECT label, image_ref
		FROM animals
		ORDER BY position, label
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query animals: %w", err)
	}
	defer rows.Close()

	var animals []entities.Animal
	for rows.Next() {
		var a entities.Animal
		if err := rows.Scan(&a.Label, &a.ImageRef); err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		animals = append(animals, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate animals: %w", err)
	}

	return animals, nil
}

// Seed upserts animals within a single transaction, keeping their order.
func (r *CatalogRepository) Seed(ctx context.Context, animals []entities.Animal) error {
	query := `
		INSERT INTO animals (label, image_ref, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (label) DO UPDATE
		SET image_ref = EXCLUDED.image_ref,
		    position = EXCLUDED.position
	`

	return r.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for i, a := range animals {
			if _, err := tx.Exec(ctx, query, a.Label, a.ImageRef, i); err != nil {
				return fmt.Errorf("seed animal %q: %w", a.Label, err)
			}
		}
		return nil
	})
}
