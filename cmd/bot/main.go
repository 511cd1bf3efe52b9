package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/animal-quiz-bot/internal/config"
	"github.com/aliskhannn/animal-quiz-bot/internal/delivery/httpapi"
	"github.com/aliskhannn/animal-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/animal-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/animal-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/animal-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/animal-quiz-bot/internal/infra/sqlite"
	"github.com/aliskhannn/animal-quiz-bot/internal/logger"
	"github.com/aliskhannn/animal-quiz-bot/internal/repository"
	"github.com/aliskhannn/animal-quiz-bot/internal/service"
	"github.com/aliskhannn/animal-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}

	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	catalogRepo, closeCatalog, err := openCatalog(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer closeCatalog()

	generator := service.NewQuestionGenerator(nil)
	quizService := service.NewQuizService(catalogRepo, generator, cfg.Quiz.QuestionCount)

	// An unusable catalog is a configuration error, not a runtime failure.
	if err := quizService.ValidateCatalog(ctx); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	sessions := storage.NewSessionStorage()
	sweeper := service.NewSessionSweeper(sessions, cfg.Sessions.SweepSchedule, cfg.Sessions.IdleTTL, lg)
	handler := telegram.NewHandler(bot, lg, quizService, sessions, cfg.AssetsDir)
	router := httpapi.NewRouter(quizService, sessions, lg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return handler.Run(gctx) })
	g.Go(func() error { return sweeper.Start(gctx) })
	g.Go(func() error { return httpapi.Serve(gctx, cfg.HTTP.Addr, router, lg) })

	err = g.Wait()
	bot.StopReceivingUpdates()
	return err
}

// openCatalog returns the configured catalog source and a function releasing it.
func openCatalog(ctx context.Context, cfg *config.Config, lg *zap.Logger) (service.CatalogRepository, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		repo, err := repository.NewCatalogRepository(cfg.Catalog.Path)
		if err != nil {
			return nil, noop, err
		}
		return repo, noop, nil

	case config.CatalogSourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, noop, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, noop, err
		}

		repo := pgrepo.NewCatalogRepository(pool, postgres.NewTransactor(pool))
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		if err := seedCatalog(ctx, cfg, lg, repo.Seed); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return repo, pool.Close, nil

	case config.CatalogSourceSQLite:
		store, err := sqlite.Open(ctx, cfg.Catalog.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		if err := seedCatalog(ctx, cfg, lg, store.Seed); err != nil {
			_ = store.Close()
			return nil, noop, err
		}
		return store, func() { _ = store.Close() }, nil
	}

	return nil, noop, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
}

func seedCatalog(
	ctx context.Context,
	cfg *config.Config,
	lg *zap.Logger,
	seed func(ctx context.Context, animals []entities.Animal) error,
) error {
	if !cfg.Catalog.SeedOnStart {
		return nil
	}

	animals, err := repository.LoadCatalogFile(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	if err := seed(ctx, animals); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	lg.Info("catalog seeded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("animals", len(animals)),
	)
	return nil
}
