package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

const (
	optionsPerQuestion = 3
	distractorsCount   = optionsPerQuestion - 1
)

var (
	ErrInsufficientCatalog = errors.New("catalog is too small for the requested quiz")
	ErrInvalidCatalog      = errors.New("invalid catalog")
)

// QuestionGenerator builds randomized multiple choice questions from a catalog.
type QuestionGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewQuestionGenerator creates a generator drawing from src.
// A nil src uses a randomly seeded PCG source.
func NewQuestionGenerator(src rand.Source) *QuestionGenerator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &QuestionGenerator{
		rnd: rand.New(src),
	}
}

// Generate picks count distinct animals and builds one question per animal.
// Every question has the correct answer and two distractors in random order.
func (g *QuestionGenerator) Generate(catalog []entities.Animal, count int) ([]entities.Question, error) {
	if err := ValidateCatalog(catalog, count); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	targets := g.sample(len(catalog), count)

	questions := make([]entities.Question, 0, count)
	for _, idx := range targets {
		questions = append(questions, g.buildQuestion(catalog, idx))
	}

	return questions, nil
}

// ValidateCatalog checks that a quiz of count questions can be built from catalog.
func ValidateCatalog(catalog []entities.Animal, count int) error {
	if count < 1 {
		return fmt.Errorf("%w: question count must be positive, got %d", ErrInvalidCatalog, count)
	}

	seen := make(map[string]bool, len(catalog))
	for i, a := range catalog {
		if a.Label == "" {
			return fmt.Errorf("%w: item %d has an empty label", ErrInvalidCatalog, i)
		}
		if seen[a.Label] {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalidCatalog, a.Label)
		}
		seen[a.Label] = true
	}

	need := max(count, optionsPerQuestion)
	if len(catalog) < need {
		return fmt.Errorf("%w: need at least %d items for %d questions, got %d",
			ErrInsufficientCatalog, need, count, len(catalog))
	}

	return nil
}

// sample returns k distinct indices in [0, n) using a partial Fisher-Yates shuffle.
func (g *QuestionGenerator) sample(n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + g.rnd.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}

func (g *QuestionGenerator) buildQuestion(catalog []entities.Animal, target int) entities.Question {
	correct := catalog[target]

	candidates := make([]entities.Animal, 0, len(catalog)-1)
	for i, a := range catalog {
		if i != target {
			candidates = append(candidates, a)
		}
	}

	g.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	options := make([]entities.Option, 0, optionsPerQuestion)
	for _, d := range candidates[:distractorsCount] {
		options = append(options, d.Option())
	}
	options = append(options, correct.Option())

	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return entities.Question{
		ImageRef:      correct.ImageRef,
		Options:       options,
		CorrectAnswer: correct.Label,
	}
}
