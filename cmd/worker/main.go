package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/ai"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/config"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/database"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/engine"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/logger"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/notify"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/repository"
	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer lg.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		lg.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()
	lg.Info("connected to database")

	if err := db.Migrate(ctx); err != nil {
		lg.Fatal("failed to run migrations", "error", err)
	}
	lg.Info("database migrations completed")

	// Generation collaborator is optional; without it AI reminders record
	// skipped_error and keep their cadence.
	var generator engine.Generator
	if cfg.AIAPIKey != "" {
		generator = ai.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		lg.Info("ai client initialized", "model", cfg.AIModel)
	} else {
		lg.Warn("ai client not configured, ai reminders will be skipped")
	}

	var notifier engine.Notifier
	if cfg.TelegramToken != "" {
		tn, err := notify.NewTelegram(cfg.TelegramToken, lg)
		if err != nil {
			lg.Fatal("failed to create telegram notifier", "error", err)
		}
		notifier = tn
		lg.Info("telegram notifier initialized")
	}

	reminderRepo := repository.NewReminderRepository(db)
	clock := clockwork.NewRealClock()

	eng := engine.New(
		engine.Stores{
			Executions: repository.NewExecutionRepository(db),
			Drafts:     repository.NewDraftRepository(db),
			Usage:      repository.NewUsageRepository(db),
			Reminders:  reminderRepo,
		},
		generator,
		engine.Caps{UserDaily: cfg.UserDailyCap, GlobalDaily: cfg.GlobalDailyCap},
		clock,
		notifier,
		lg,
	)

	sched := scheduler.New(reminderRepo, eng, clock, cfg.PollInterval, cfg.MaxConcurrency, lg)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		lg.Info("shutting down")
		cancel()
	}()

	sched.Start(ctx)
}
