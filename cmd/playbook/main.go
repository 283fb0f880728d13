package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/playbook/internal/bot"
	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/config"
	"github.com/omarshaarawi/playbook/internal/repository/memory"
	"github.com/omarshaarawi/playbook/internal/repository/sqlite"
	"github.com/omarshaarawi/playbook/internal/scheduler"
	"github.com/omarshaarawi/playbook/internal/service"
	"github.com/omarshaarawi/playbook/internal/validator"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer closeStore()

	cat := catalog.New()
	if cfg.Storage.FormationsFile != "" {
		formations, err := catalog.LoadFile(cfg.Storage.FormationsFile)
		if err != nil {
			return err
		}
		if err := cat.Add(formations...); err != nil {
			return err
		}
		slog.Info("Loaded formations", "file", cfg.Storage.FormationsFile, "count", len(formations))
	}

	playbook := service.NewPlaybookService(cat, validator.New(cfg.Validator.Tolerances()), store, cfg.Editor.AutosaveInterval)

	sendMessage := func(text string) error {
		slog.Info("Scheduled report", "text", text)
		return nil
	}
	var telegramBot *bot.TelegramBot
	if cfg.BotEnabled() {
		telegramBot, err = bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, playbook)
		if err != nil {
			return err
		}
		sendMessage = telegramBot.SendMessage
	} else {
		slog.Info("TELEGRAM_TOKEN not set, bot disabled")
	}

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		slog.Error("Failed to load location", "timezone", cfg.Scheduler.Timezone, "error", err)
		location = time.UTC
	}
	sched, err := scheduler.NewScheduler(playbook, sendMessage, scheduler.Options{
		Location:       location,
		DraftRetention: cfg.Scheduler.DraftRetention,
		PruneAt:        cfg.Scheduler.PruneHour,
		AuditSchedule:  cfg.Scheduler.AuditSchedule,
	})
	if err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/", healthCheckHandler)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	if telegramBot != nil {
		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	}

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
	}
	return nil
}

// openStore opens the SQLite database at path. An empty path keeps plays in
// memory only.
func openStore(ctx context.Context, path string) (service.Store, func(), error) {
	if path == "" {
		slog.Info("PLAYBOOK_DB_PATH is empty, plays are kept in memory")
		return memory.NewRepository(), func() {}, nil
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Opened playbook database", "path", path)
	return store, func() {
		if err := store.Close(); err != nil {
			slog.Error("Error closing store", "error", err)
		}
	}, nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
