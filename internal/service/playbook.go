package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/editor"
	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/omarshaarawi/playbook/internal/play"
	"github.com/omarshaarawi/playbook/internal/repository"
	"github.com/omarshaarawi/playbook/internal/validator"
)

// NewPlayDraftKey is the draft slot shared by every unsaved play.
const NewPlayDraftKey = "new-play"

var ErrValidationFailed = errors.New("play failed validation")

// Store is what the service needs from a storage adapter.
type Store interface {
	editor.DraftStore
	SavePlay(ctx context.Context, play *models.PlayRecord) error
	GetPlay(ctx context.Context, id string) (models.PlayRecord, error)
	ListPlays(ctx context.Context) ([]models.PlayRecord, error)
	DeletePlay(ctx context.Context, id string) error
	PruneDrafts(ctx context.Context, cutoff time.Time) (int, error)
}

type PlaybookService struct {
	catalog          *catalog.Catalog
	validator        *validator.Validator
	store            Store
	autosaveInterval time.Duration
	now              func() time.Time
}

func NewPlaybookService(c *catalog.Catalog, v *validator.Validator, store Store, autosaveInterval time.Duration) *PlaybookService {
	return &PlaybookService{
		catalog:          c,
		validator:        v,
		store:            store,
		autosaveInterval: autosaveInterval,
		now:              time.Now,
	}
}

func (s *PlaybookService) Catalog() *catalog.Catalog { return s.catalog }

// NewSession starts editing a new play. A draft left by an earlier session
// is reported through Session.PendingDraft and is not applied until
// RestoreDraft is called.
func (s *PlaybookService) NewSession(ctx context.Context) (*Session, error) {
	session := &Session{
		catalog:   s.catalog,
		autosaver: editor.NewAutosaver(s.store, NewPlayDraftKey, s.autosaveInterval),
	}
	session.attach(play.New(s.catalog))

	draft, err := session.autosaver.LoadDraft(ctx)
	switch {
	case err == nil:
		session.draft = &draft
		slog.Info("Found unsaved draft", "key", draft.Key, "savedAt", draft.SavedAt)
	case errors.Is(err, repository.ErrNotFound):
	default:
		return nil, fmt.Errorf("error loading draft: %w", err)
	}
	return session, nil
}

// OpenSession loads a saved play for editing. Edits to saved plays are not
// autosaved.
func (s *PlaybookService) OpenSession(ctx context.Context, id string) (*Session, error) {
	record, err := s.store.GetPlay(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error opening play: %w", err)
	}
	session := &Session{ID: record.ID, Name: record.Name, Code: record.Code, catalog: s.catalog}
	session.attach(play.Load(s.catalog, record.Snapshot))
	return session, nil
}

// Validate classifies the session's current play without saving it.
func (s *PlaybookService) Validate(session *Session) models.ValidationResult {
	snapshot := session.Model().Serialize()
	return s.validator.Validate(snapshot, snapshot.PlayType)
}

// Save validates and persists the session's play. Errors block the save
// unless override is set; warnings never do. A new play's draft is cleared
// once it is stored.
func (s *PlaybookService) Save(ctx context.Context, session *Session, override bool) (models.PlayRecord, models.ValidationResult, error) {
	snapshot := session.Model().Serialize()
	result := s.validator.Validate(snapshot, snapshot.PlayType)
	if !result.IsValid && !override {
		return models.PlayRecord{}, result, fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(result.Errors, "; "))
	}

	record := &models.PlayRecord{
		ID:        session.ID,
		Code:      session.Code,
		Name:      session.Name,
		ODK:       snapshot.ODK,
		Formation: snapshot.Formation,
		PlayType:  snapshot.PlayType,
		Snapshot:  snapshot,
	}
	if record.Code == "" {
		record.Code = newCode(snapshot.ODK)
	}
	if err := s.store.SavePlay(ctx, record); err != nil {
		slog.Error("Failed to save play", "name", record.Name, "error", err)
		return models.PlayRecord{}, result, fmt.Errorf("error saving play: %w", err)
	}
	slog.Info("Saved play", "id", record.ID, "code", record.Code, "overridden", !result.IsValid)

	session.ID = record.ID
	session.Code = record.Code
	if session.autosaver != nil {
		if err := session.autosaver.ClearDraft(ctx); err != nil {
			slog.Error("Failed to clear draft", "key", session.autosaver.Key(), "error", err)
		}
		session.autosaver = nil
		session.draft = nil
	}
	return *record, result, nil
}

// ValidatePlay runs the validator over a stored play.
func (s *PlaybookService) ValidatePlay(ctx context.Context, id string) (models.PlayRecord, models.ValidationResult, error) {
	record, err := s.store.GetPlay(ctx, id)
	if err != nil {
		return models.PlayRecord{}, models.ValidationResult{}, fmt.Errorf("error fetching play: %w", err)
	}
	return record, s.validator.Validate(record.Snapshot, record.PlayType), nil
}

func (s *PlaybookService) DeletePlay(ctx context.Context, id string) error {
	if err := s.store.DeletePlay(ctx, id); err != nil {
		return fmt.Errorf("error deleting play: %w", err)
	}
	slog.Info("Deleted play", "id", id)
	return nil
}

// PruneDrafts removes drafts untouched for longer than retention.
func (s *PlaybookService) PruneDrafts(ctx context.Context, retention time.Duration) (int, error) {
	n, err := s.store.PruneDrafts(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("error pruning drafts: %w", err)
	}
	return n, nil
}

func newCode(odk string) string {
	if odk == "" {
		odk = "P"
	}
	return odk + "-" + strings.ToUpper(uuid.NewString()[:8])
}
