package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/animal-quiz-bot/internal/config"
)

const serviceName = "animal-quiz-bot"

// New builds a JSON production logger for the production environment and a
// console development logger otherwise. cfg.LogLevel overrides the default level.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = level
	}

	zcfg.InitialFields = map[string]any{
		"service": serviceName,
		"env":     cfg.Env,
	}

	return zcfg.Build()
}
