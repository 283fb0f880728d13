package service

import (
	"context"
	"errors"

	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/editor"
	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/omarshaarawi/playbook/internal/play"
)

var ErrNoDraft = errors.New("no draft to restore")

// Session is one editing session. ID is empty until the play is first saved.
type Session struct {
	ID   string
	Name string
	Code string

	catalog    *catalog.Catalog
	controller *editor.Controller
	autosaver  *editor.Autosaver
	draft      *models.Draft
}

func (s *Session) attach(model *play.Model) {
	s.controller = editor.NewController(model, nil)
	s.controller.OnChange(s.touch)
}

func (s *Session) touch() {
	if s.autosaver != nil {
		s.autosaver.Touch(s.controller.Model().Serialize())
	}
}

func (s *Session) Controller() *editor.Controller { return s.controller }
func (s *Session) Model() *play.Model             { return s.controller.Model() }

// IsNew reports whether the play has never been saved.
func (s *Session) IsNew() bool { return s.ID == "" }

// PendingDraft returns the draft found when the session opened, if the
// user has not yet restored or discarded it.
func (s *Session) PendingDraft() (models.Draft, bool) {
	if s.draft == nil {
		return models.Draft{}, false
	}
	return *s.draft, true
}

// RestoreDraft replaces the session's play with the pending draft. Undo
// history starts over.
func (s *Session) RestoreDraft() error {
	if s.draft == nil {
		return ErrNoDraft
	}
	model := play.Load(s.catalog, s.draft.Snapshot)
	s.draft = nil
	s.attach(model)
	return nil
}

// DiscardDraft deletes the pending draft.
func (s *Session) DiscardDraft(ctx context.Context) error {
	if s.draft == nil {
		return ErrNoDraft
	}
	s.draft = nil
	return s.autosaver.ClearDraft(ctx)
}

// Flush writes any pending autosave now.
func (s *Session) Flush() {
	if s.autosaver != nil {
		s.autosaver.Flush()
	}
}
