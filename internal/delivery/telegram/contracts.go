package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
)

// Bot is the part of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type QuizService interface {
	NewSession(ctx context.Context) (entities.QuizSession, error)
	Reset(ctx context.Context) (entities.QuizSession, error)
	SetAnswer(session entities.QuizSession, index int, value string) (entities.QuizSession, error)
	Submit(session entities.QuizSession) (entities.QuizSession, entities.Outcome, error)
	Retry(session entities.QuizSession) entities.QuizSession
}

type SessionStorage interface {
	Store(chatID int64, session entities.QuizSession)
	Get(chatID int64) (entities.QuizSession, bool)
	Delete(chatID int64)
}
