package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/playbook/internal/service"
)

const jobTimeout = time.Minute

type Options struct {
	Location       *time.Location
	DraftRetention time.Duration
	// PruneAt is the hour of day drafts are pruned.
	PruneAt uint
	// AuditSchedule is a standard five-field cron expression. Empty
	// disables the audit.
	AuditSchedule string
}

type Scheduler struct {
	s           gocron.Scheduler
	playbook    *service.PlaybookService
	sendMessage func(string) error
	opts        Options
}

func NewScheduler(playbook *service.PlaybookService, sendMessage func(string) error, opts Options) (*Scheduler, error) {
	location := opts.Location
	if location == nil {
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		playbook:    playbook,
		sendMessage: sendMessage,
		opts:        opts,
	}, nil
}

func (s *Scheduler) Start() error {
	// Stale drafts - daily
	_, err := s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(s.opts.PruneAt, 0, 0))),
		gocron.NewTask(s.pruneDrafts),
		gocron.WithName("prune-drafts"),
	)
	if err != nil {
		return fmt.Errorf("failed to create prune drafts job: %w", err)
	}

	if s.opts.AuditSchedule != "" {
		_, err = s.s.NewJob(
			gocron.CronJob(s.opts.AuditSchedule, false),
			gocron.NewTask(s.audit),
			gocron.WithName("playbook-audit"),
		)
		if err != nil {
			return fmt.Errorf("failed to create audit job: %w", err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) pruneDrafts() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.playbook.PruneDrafts(ctx, s.opts.DraftRetention)
	if err != nil {
		slog.Error("Failed to prune drafts", "error", err)
		return
	}
	slog.Info("Pruned drafts", "count", n, "retention", s.opts.DraftRetention)
}

// audit posts the failing plays. A clean playbook sends nothing.
func (s *Scheduler) audit() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	report, failing, err := s.playbook.AuditReport(ctx)
	if err != nil {
		slog.Error("Failed to audit playbook", "error", err)
		return
	}
	slog.Info("Audited playbook", "failing", failing)
	if failing == 0 || s.sendMessage == nil {
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send audit report", "error", err)
	}
}
