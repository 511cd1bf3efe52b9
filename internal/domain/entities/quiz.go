package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrIncompleteAnswers       = errors.New("not all questions are answered")
	ErrInvalidAnswerValue      = errors.New("answer is not one of the question options")
	ErrQuestionIndexOutOfRange = errors.New("question index out of range")
	ErrSessionFinished         = errors.New("quiz session is already finished")
)

// SessionStatus is the state of a quiz session.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusFinished   SessionStatus = "finished"
)

// Unanswered marks an answer slot the user has not filled yet.
const Unanswered = ""

// QuizSession represents a single quiz shown to a user.
// It is a value: every transition returns a new session and leaves the receiver untouched.
type QuizSession struct {
	ID        string     // unique session ID, changes on every newly generated quiz
	Questions []Question // fixed set of questions
	Answers   []string   // selected option value per question, Unanswered if not set
	Finished  bool       // whether the answers were submitted and scored
	StartedAt time.Time  // timestamp when the questions were generated
}

// Outcome is the result of a submission attempt.
type Outcome struct {
	CorrectCount int   // number of correct answers
	Total        int   // number of questions
	Unanswered   []int // indices of unanswered questions, empty on a complete submission
}

// Complete reports whether the submission was scored.
func (o Outcome) Complete() bool {
	return len(o.Unanswered) == 0
}

// NewQuizSession creates an in-progress session with every answer unset.
func NewQuizSession(questions []Question) QuizSession {
	qs := make([]Question, len(questions))
	copy(qs, questions)

	return QuizSession{
		ID:        uuid.NewString(),
		Questions: qs,
		Answers:   make([]string, len(questions)),
		Finished:  false,
		StartedAt: time.Now(),
	}
}

// Status returns the current state of the session.
func (s QuizSession) Status() SessionStatus {
	if s.Finished {
		return StatusFinished
	}
	return StatusInProgress
}

// WithAnswer returns a copy of the session with the answer at index set to value.
// Answers may still be changed after the session is finished; the finished flag is kept as is.
func (s QuizSession) WithAnswer(index int, value string) (QuizSession, error) {
	if index < 0 || index >= len(s.Questions) {
		return s, fmt.Errorf("%w: %d of %d", ErrQuestionIndexOutOfRange, index, len(s.Questions))
	}
	if !s.Questions[index].HasOption(value) {
		return s, fmt.Errorf("%w: %q", ErrInvalidAnswerValue, value)
	}

	next := s.clone()
	next.Answers[index] = value
	return next, nil
}

// Unanswered returns the indices of questions without an answer.
func (s QuizSession) Unanswered() []int {
	var missing []int
	for i, a := range s.Answers {
		if a == Unanswered {
			missing = append(missing, i)
		}
	}
	return missing
}

// Submit scores the session.
// An incomplete session is returned unchanged together with ErrIncompleteAnswers
// and an outcome listing the unanswered questions.
func (s QuizSession) Submit() (QuizSession, Outcome, error) {
	if s.Finished {
		return s, Outcome{}, ErrSessionFinished
	}

	outcome := Outcome{Total: len(s.Questions)}
	if missing := s.Unanswered(); len(missing) > 0 {
		outcome.Unanswered = missing
		return s, outcome, ErrIncompleteAnswers
	}

	for i, answer := range s.Answers {
		if answer == s.Questions[i].CorrectAnswer {
			outcome.CorrectCount++
		}
	}

	next := s.clone()
	next.Finished = true
	return next, outcome, nil
}

// Retry reopens a finished session for another submission.
// Questions and answers stay intact.
func (s QuizSession) Retry() QuizSession {
	next := s.clone()
	next.Finished = false
	return next
}

func (s QuizSession) clone() QuizSession {
	next := s
	next.Questions = make([]Question, len(s.Questions))
	copy(next.Questions, s.Questions)
	next.Answers = make([]string, len(s.Answers))
	copy(next.Answers, s.Answers)
	return next
}
