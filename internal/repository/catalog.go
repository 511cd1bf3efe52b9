package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

var ErrEmptyCatalog = errors.New("catalog is empty")

// CatalogRepository provides access to the animals of the quiz.
// The catalog is read once from a JSON file and kept in memory.
type CatalogRepository struct {
	animals []entities.Animal
}

// NewCatalogRepository loads the catalog from the JSON file at path.
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	animals, err := LoadCatalogFile(path)
	if err != nil {
		return nil, err
	}

	return NewCatalogRepositoryFrom(animals)
}

// NewCatalogRepositoryFrom creates a repository over an already loaded catalog.
func NewCatalogRepositoryFrom(animals []entities.Animal) (*CatalogRepository, error) {
	if len(animals) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(animals))
	for _, a := range animals {
		if a.Label == "" {
			return nil, fmt.Errorf("catalog entry with image %q has no label", a.ImageRef)
		}
		if seen[a.Label] {
			return nil, fmt.Errorf("duplicate catalog label %q", a.Label)
		}
		seen[a.Label] = true
	}

	cp := make([]entities.Animal, len(animals))
	copy(cp, animals)

	return &CatalogRepository{animals: cp}, nil
}

// GetAll returns a copy of the whole catalog.
func (r *CatalogRepository) GetAll(_ context.Context) ([]entities.Animal, error) {
	out := make([]entities.Animal, len(r.animals))
	copy(out, r.animals)
	return out, nil
}

// LoadCatalogFile reads a {"animals": [...]} JSON document.
func LoadCatalogFile(path string) ([]entities.Animal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var wrapper struct {
		Animals []entities.Animal `json:"animals"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}

	if len(wrapper.Animals) == 0 {
		return nil, ErrEmptyCatalog
	}

	return wrapper.Animals, nil
}
