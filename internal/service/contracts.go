package service

import (
	"context"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

type CatalogRepository interface {
	GetAll(ctx context.Context) ([]entities.Animal, error)
}

type Generator interface {
	Generate(catalog []entities.Animal, count int) ([]entities.Question, error)
}
