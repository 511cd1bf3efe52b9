package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, userMessage(err))
			return nil
		}
		return nil
	}
}

// userMessage picks the text shown to the user for err.
func userMessage(err error) string {
	if errors.Is(err, errQuizUnavailable) {
		return msgQuizUnavailable
	}
	return msgInternalError
}
