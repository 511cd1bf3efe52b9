package storage

import (
	"testing"
	"time"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

func TestSessionStorage_StoreReplacesWholesale(t *testing.T) {
	s := NewSessionStorage()

	first := entities.QuizSession{ID: "first"}
	second := entities.QuizSession{ID: "second"}

	s.Store(1, first)
	s.Store(1, second)

	got, ok := s.Get(1)
	if !ok {
		t.Fatal("expected session for chat 1")
	}
	if got.ID != "second" {
		t.Errorf("expected latest session, got %q", got.ID)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 session, got %d", s.Len())
	}
}

func TestSessionStorage_Delete(t *testing.T) {
	s := NewSessionStorage()
	s.Store(7, entities.QuizSession{ID: "x"})
	s.Delete(7)

	if _, ok := s.Get(7); ok {
		t.Error("expected session to be deleted")
	}
}

func TestSessionStorage_EvictIdle(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	current := base

	s := NewSessionStorage()
	s.now = func() time.Time { return current }

	s.Store(1, entities.QuizSession{ID: "old"})
	current = base.Add(2 * time.Hour)
	s.Store(2, entities.QuizSession{ID: "fresh"})

	evicted := s.EvictIdle(base.Add(3*time.Hour), 90*time.Minute)
	if evicted != 1 {
		t.Fatalf("expected 1 evicted session, got %d", evicted)
	}
	if _, ok := s.Get(1); ok {
		t.Error("expected idle session to be evicted")
	}
	if _, ok := s.Get(2); !ok {
		t.Error("expected fresh session to be kept")
	}
}
