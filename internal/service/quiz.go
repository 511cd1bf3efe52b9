package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

// DefaultQuestionCount is the number of questions in a quiz unless configured otherwise.
const DefaultQuestionCount = 3

// QuizService drives quiz sessions: generation, answering, scoring and resets.
type QuizService struct {
	catalogRepo   CatalogRepository
	generator     Generator
	questionCount int
}

func NewQuizService(
	catalogRepo CatalogRepository,
	generator Generator,
	questionCount int,
) *QuizService {
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}

	return &QuizService{
		catalogRepo:   catalogRepo,
		generator:     generator,
		questionCount: questionCount,
	}
}

// QuestionCount returns the number of questions per quiz.
func (s *QuizService) QuestionCount() int {
	return s.questionCount
}

// ValidateCatalog checks at startup that the catalog can serve a quiz.
func (s *QuizService) ValidateCatalog(ctx context.Context) error {
	catalog, err := s.catalogRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	return ValidateCatalog(catalog, s.questionCount)
}

// NewSession generates a fresh set of questions with every answer unset.
func (s *QuizService) NewSession(ctx context.Context) (entities.QuizSession, error) {
	catalog, err := s.catalogRepo.GetAll(ctx)
	if err != nil {
		return entities.QuizSession{}, fmt.Errorf("load catalog: %w", err)
	}

	questions, err := s.generator.Generate(catalog, s.questionCount)
	if err != nil {
		return entities.QuizSession{}, fmt.Errorf("generate questions: %w", err)
	}

	return entities.NewQuizSession(questions), nil
}

// Reset discards the given state and starts over with new questions.
func (s *QuizService) Reset(ctx context.Context) (entities.QuizSession, error) {
	return s.NewSession(ctx)
}

// SetAnswer records value as the answer to the question at index.
func (s *QuizService) SetAnswer(session entities.QuizSession, index int, value string) (entities.QuizSession, error) {
	return session.WithAnswer(index, value)
}

// Submit scores the session if all questions are answered.
func (s *QuizService) Submit(session entities.QuizSession) (entities.QuizSession, entities.Outcome, error) {
	return session.Submit()
}

// Retry reopens a finished session keeping its questions and answers.
func (s *QuizService) Retry(session entities.QuizSession) entities.QuizSession {
	return session.Retry()
}
