package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

// buildAnswerKeyboard builds the option keyboard of a question, marking the picked option.
func buildAnswerKeyboard(session entities.QuizSession, questionIndex int) tgbotapi.InlineKeyboardMarkup {
	q := session.Questions[questionIndex]
	picked := session.Answers[questionIndex]

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range q.Options {
		text := option.Label
		if picked != entities.Unanswered && option.Value == picked {
			text = markPicked + text
		}
		data := buildAnswerCallback(session.ID, questionIndex, i)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildControlKeyboard builds the keyboard under the quiz.
func buildControlKeyboard(sessionID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnSubmit, buildSubmitCallback(sessionID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnReset, buildResetCallback(sessionID)),
		),
	)
}

// buildResultKeyboard builds the keyboard of the score message.
func buildResultKeyboard(sessionID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnRetry, buildRetryCallback(sessionID)),
			tgbotapi.NewInlineKeyboardButtonData(btnNewQuiz, buildResetCallback(sessionID)),
		),
	)
}
