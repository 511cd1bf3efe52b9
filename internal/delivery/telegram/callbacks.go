package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	sessionID, err := data.sessionID()
	if err != nil {
		h.logger.Warn("invalid callback data", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	session, ok := h.sessions.Get(chatID)
	if !ok || session.ID != sessionID {
		h.answerCallback(cb.ID, msgStaleQuiz)
		return
	}

	switch data.Action {
	case actionAnswer:
		h.handleAnswerCallback(cb, session, data)
	case actionSubmit:
		h.handleSubmitCallback(cb, session)
	case actionRetry:
		h.handleRetryCallback(cb, session)
	case actionReset:
		h.answerCallback(cb.ID, "")
		h.clearKeyboard(chatID, cb.Message.MessageID)
		_ = h.withErrorHandling(h.newQuizHandler())(ctx, chatID)
	default:
		h.logger.Warn("unknown callback action", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleAnswerCallback(cb *tgbotapi.CallbackQuery, session entities.QuizSession, data callbackData) {
	chatID := cb.Message.Chat.ID

	questionIndex, optionIndex, err := data.answerParams()
	if err != nil || questionIndex < 0 || questionIndex >= len(session.Questions) {
		h.logger.Warn("invalid answer callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	options := session.Questions[questionIndex].Options
	if optionIndex < 0 || optionIndex >= len(options) {
		h.logger.Warn("answer option out of range", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}
	value := options[optionIndex].Value

	if session.Answers[questionIndex] == value {
		h.answerCallback(cb.ID, fmt.Sprintf(msgSelected, options[optionIndex].Label))
		return
	}

	next, err := h.quizService.SetAnswer(session, questionIndex, value)
	if err != nil {
		h.logger.Error("failed to set answer",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, msgInternalError)
		return
	}

	h.sessions.Store(chatID, next)
	h.answerCallback(cb.ID, fmt.Sprintf(msgSelected, options[optionIndex].Label))

	kb := buildAnswerKeyboard(next, questionIndex)
	h.request(tgbotapi.NewEditMessageReplyMarkup(chatID, cb.Message.MessageID, kb))
}

func (h *Handler) handleSubmitCallback(cb *tgbotapi.CallbackQuery, session entities.QuizSession) {
	chatID := cb.Message.Chat.ID

	next, outcome, err := h.quizService.Submit(session)
	switch {
	case errors.Is(err, entities.ErrIncompleteAnswers):
		h.answerCallbackAlert(cb.ID, incompleteText(outcome.Unanswered))
		return
	case errors.Is(err, entities.ErrSessionFinished):
		h.answerCallback(cb.ID, msgAlreadyDone)
		return
	case err != nil:
		h.logger.Error("failed to submit quiz",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, msgInternalError)
		return
	}

	h.sessions.Store(chatID, next)
	h.answerCallback(cb.ID, "")

	h.logger.Info("quiz submitted",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", next.ID),
		zap.Int("correct", outcome.CorrectCount),
		zap.Int("total", outcome.Total),
	)

	msg := newHTMLMessage(chatID, scoreText(outcome.CorrectCount, outcome.Total))
	msg.ReplyMarkup = buildResultKeyboard(next.ID)
	h.send(msg)
}

func (h *Handler) handleRetryCallback(cb *tgbotapi.CallbackQuery, session entities.QuizSession) {
	chatID := cb.Message.Chat.ID

	h.sessions.Store(chatID, h.quizService.Retry(session))
	h.answerCallback(cb.ID, msgRetry)
	h.clearKeyboard(chatID, cb.Message.MessageID)
}

// clearKeyboard removes the inline keyboard of a message so it cannot be pressed twice.
func (h *Handler) clearKeyboard(chatID int64, messageID int) {
	empty := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	h.request(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, empty))
}

// answerCallback removes the user's "clock" and optionally shows a short notice.
func (h *Handler) answerCallback(callbackID, text string) {
	h.request(tgbotapi.NewCallback(callbackID, text))
}

func (h *Handler) answerCallbackAlert(callbackID, text string) {
	h.request(tgbotapi.NewCallbackWithAlert(callbackID, text))
}
