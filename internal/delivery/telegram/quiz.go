package telegram

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

var errQuizUnavailable = errors.New("quiz unavailable")

// newQuizHandler replaces the chat's quiz with a freshly generated one.
// The old quiz is dropped first, so its buttons go stale even if generation fails.
func (h *Handler) newQuizHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.sessions.Delete(chatID)

		session, err := h.quizService.Reset(ctx)
		if err != nil {
			return fmt.Errorf("%w: reset: %w", errQuizUnavailable, err)
		}

		h.sessions.Store(chatID, session)
		h.renderQuiz(chatID, session)
		return nil
	}
}

// currentQuizHandler shows the chat's quiz, creating one if there is none.
func (h *Handler) currentQuizHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, ok := h.sessions.Get(chatID)
		if !ok {
			var err error
			session, err = h.quizService.NewSession(ctx)
			if err != nil {
				return fmt.Errorf("%w: new session: %w", errQuizUnavailable, err)
			}
			h.sessions.Store(chatID, session)
		}

		h.renderQuiz(chatID, session)
		return nil
	}
}

// renderQuiz sends one photo per question followed by the control message.
// A question whose photo cannot be sent is delivered as text with the same keyboard.
func (h *Handler) renderQuiz(chatID int64, session entities.QuizSession) {
	for i, q := range session.Questions {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(h.imagePath(q.ImageRef)))
		photo.Caption = questionCaption(i)
		photo.ReplyMarkup = buildAnswerKeyboard(session, i)

		if _, err := h.bot.Send(photo); err != nil {
			h.logger.Warn("failed to send question photo, sending text instead",
				zap.Int64("chat_id", chatID),
				zap.String("image", q.ImageRef),
				zap.Error(err),
			)

			msg := newHTMLMessage(chatID, questionCaption(i))
			msg.ReplyMarkup = buildAnswerKeyboard(session, i)
			h.send(msg)
		}
	}

	msg := newHTMLMessage(chatID, msgControls)
	msg.ReplyMarkup = buildControlKeyboard(session.ID)
	h.send(msg)
}

func (h *Handler) imagePath(ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(h.assetsDir, ref)
}
