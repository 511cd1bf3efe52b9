package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/animal-quiz-bot/internal/service"
)

type stubCatalog struct {
	animals []entities.Animal
	err     error
}

func (s stubCatalog) GetAll(context.Context) ([]entities.Animal, error) {
	return s.animals, s.err
}

func newService(animals []entities.Animal, count int) *service.QuizService {
	return service.NewQuizService(stubCatalog{animals: animals}, seeded(11), count)
}

func wrongAnswer(q entities.Question) string {
	for _, opt := range q.Options {
		if opt.Value != q.CorrectAnswer {
			return opt.Value
		}
	}
	return ""
}

func TestQuizService_NewSession(t *testing.T) {
	catalog := catalogOf(animalLabels...)
	svc := newService(catalog, 0)

	if svc.QuestionCount() != service.DefaultQuestionCount {
		t.Fatalf("expected default count %d, got %d", service.DefaultQuestionCount, svc.QuestionCount())
	}

	session, err := svc.NewSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkQuestions(t, catalog, session.Questions, 3)
	if session.Status() != entities.StatusInProgress {
		t.Errorf("expected in progress, got %s", session.Status())
	}
	if len(session.Unanswered()) != 3 {
		t.Errorf("expected all answers unset, got %v", session.Answers)
	}
}

func TestQuizService_ScenarioAllCorrect(t *testing.T) {
	catalog := catalogOf("Bee", "Crocodile", "Deer", "Elephant")
	svc := newService(catalog, 3)

	session, err := svc.NewSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkQuestions(t, catalog, session.Questions, 3)

	for i, q := range session.Questions {
		session, err = svc.SetAnswer(session, i, q.CorrectAnswer)
		if err != nil {
			t.Fatalf("set answer %d: %v", i, err)
		}
	}

	_, outcome, err := svc.Submit(session)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.CorrectCount != 3 || outcome.Total != 3 {
		t.Errorf("expected 3/3, got %d/%d", outcome.CorrectCount, outcome.Total)
	}
}

func TestQuizService_ScenarioAllWrong(t *testing.T) {
	catalog := catalogOf("Bee", "Crocodile", "Deer", "Elephant")
	svc := newService(catalog, 3)

	session, err := svc.NewSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, q := range session.Questions {
		session, err = svc.SetAnswer(session, i, wrongAnswer(q))
		if err != nil {
			t.Fatalf("set answer %d: %v", i, err)
		}
	}

	_, outcome, err := svc.Submit(session)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.CorrectCount != 0 || outcome.Total != 3 {
		t.Errorf("expected 0/3, got %d/%d", outcome.CorrectCount, outcome.Total)
	}
}

func TestQuizService_SubmitIncompleteKeepsState(t *testing.T) {
	svc := newService(catalogOf(animalLabels...), 3)

	session, err := svc.NewSession(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	session, err = svc.SetAnswer(session, 2, session.Questions[2].CorrectAnswer)
	if err != nil {
		t.Fatal(err)
	}

	next, outcome, err := svc.Submit(session)
	if !errors.Is(err, entities.ErrIncompleteAnswers) {
		t.Fatalf("expected ErrIncompleteAnswers, got %v", err)
	}
	if next.Finished != session.Finished {
		t.Error("incomplete submission changed the finished flag")
	}
	if len(outcome.Unanswered) != 2 {
		t.Errorf("expected 2 unanswered, got %v", outcome.Unanswered)
	}
}

func TestQuizService_SetAnswerRejectsForeignValue(t *testing.T) {
	svc := newService(catalogOf(animalLabels...), 3)

	session, err := svc.NewSession(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.SetAnswer(session, 0, "Dragon")
	if !errors.Is(err, entities.ErrInvalidAnswerValue) {
		t.Errorf("expected ErrInvalidAnswerValue, got %v", err)
	}
}

func TestQuizService_ResetAlwaysFresh(t *testing.T) {
	ctx := context.Background()
	svc := newService(catalogOf(animalLabels...), 3)

	session, err := svc.NewSession(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for i, q := range session.Questions {
		session, _ = svc.SetAnswer(session, i, q.CorrectAnswer)
	}
	finished, _, err := svc.Submit(session)
	if err != nil {
		t.Fatal(err)
	}

	for _, prior := range []entities.QuizSession{session, finished} {
		fresh, err := svc.Reset(ctx)
		if err != nil {
			t.Fatalf("reset: %v", err)
		}
		if fresh.Status() != entities.StatusInProgress {
			t.Errorf("expected in progress after reset, got %s", fresh.Status())
		}
		if len(fresh.Unanswered()) != len(fresh.Questions) {
			t.Errorf("expected all answers unset after reset, got %v", fresh.Answers)
		}
		if fresh.ID == prior.ID {
			t.Error("expected a new session after reset")
		}
	}
}

func TestQuizService_RetryKeepsQuestions(t *testing.T) {
	svc := newService(catalogOf(animalLabels...), 3)

	session, err := svc.NewSession(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for i, q := range session.Questions {
		session, _ = svc.SetAnswer(session, i, wrongAnswer(q))
	}
	finished, _, err := svc.Submit(session)
	if err != nil {
		t.Fatal(err)
	}

	retried := svc.Retry(finished)
	if retried.Finished {
		t.Error("expected retry to clear the finished flag")
	}
	for i := range finished.Questions {
		if retried.Questions[i].CorrectAnswer != finished.Questions[i].CorrectAnswer {
			t.Errorf("question %d changed on retry", i)
		}
		if retried.Answers[i] != finished.Answers[i] {
			t.Errorf("answer %d changed on retry", i)
		}
	}
}

func TestQuizService_ValidateCatalog(t *testing.T) {
	ctx := context.Background()

	if err := newService(catalogOf(animalLabels...), 3).ValidateCatalog(ctx); err != nil {
		t.Errorf("expected valid catalog, got %v", err)
	}

	err := newService(catalogOf("Bee", "Owl"), 3).ValidateCatalog(ctx)
	if !errors.Is(err, service.ErrInsufficientCatalog) {
		t.Errorf("expected ErrInsufficientCatalog, got %v", err)
	}
}

func TestQuizService_CatalogError(t *testing.T) {
	loadErr := errors.New("db down")
	svc := service.NewQuizService(stubCatalog{err: loadErr}, seeded(12), 3)

	if _, err := svc.NewSession(context.Background()); !errors.Is(err, loadErr) {
		t.Errorf("expected wrapped load error, got %v", err)
	}
	if err := svc.ValidateCatalog(context.Background()); !errors.Is(err, loadErr) {
		t.Errorf("expected wrapped load error, got %v", err)
	}
}
