package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/omarshaarawi/playbook/internal/repository"
	"github.com/omarshaarawi/playbook/internal/repository/memory"
	"github.com/omarshaarawi/playbook/internal/validator"
)

type failingStore struct {
	*memory.Repository
}

func (failingStore) SavePlay(context.Context, *models.PlayRecord) error {
	return errors.New("database is locked")
}

func newService(store Store) *PlaybookService {
	return NewPlaybookService(catalog.New(), validator.New(validator.DefaultTolerances()), store, time.Hour)
}

func label(t *testing.T, s *Session, l string) models.Player {
	t.Helper()
	for _, p := range s.Model().Players() {
		if p.Label == l {
			return p
		}
	}
	t.Fatalf("no player labelled %s", l)
	return models.Player{}
}

func offsidesSession(t *testing.T, svc *PlaybookService) *Session {
	t.Helper()
	session, err := svc.NewSession(context.Background())
	require.NoError(t, err)
	require.NoError(t, session.Controller().LoadFormation(models.ODKOffense, "Shotgun"))
	x := label(t, session, "X")
	require.NoError(t, session.Model().MovePlayer(x.ID, models.Point{X: x.Point.X, Y: 190}))
	return session
}

func TestSaveLegalPlay(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	svc := newService(repo)

	session, err := svc.NewSession(ctx)
	require.NoError(t, err)
	assert.True(t, session.IsNew())
	require.NoError(t, session.Controller().LoadFormation(models.ODKOffense, "Shotgun"))
	session.Name = "Four Verticals"

	record, result, err := svc.Save(ctx, session, false)
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.NotEmpty(t, record.ID)
	assert.Regexp(t, `^O-[0-9A-F]{8}$`, record.Code)
	assert.Equal(t, "Shotgun", record.Formation)
	assert.Equal(t, record.ID, session.ID)
	assert.False(t, session.IsNew())

	stored, err := repo.GetPlay(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Four Verticals", stored.Name)
	assert.Len(t, stored.Snapshot.Players, 11)
}

func TestSaveBlocksOnErrorsUnlessOverridden(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	svc := newService(repo)
	session := offsidesSession(t, svc)

	_, result, err := svc.Save(ctx, session, false)
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.False(t, result.IsValid)
	plays, err := repo.ListPlays(ctx)
	require.NoError(t, err)
	assert.Empty(t, plays)

	record, result, err := svc.Save(ctx, session, true)
	require.NoError(t, err)
	assert.False(t, result.IsValid)
	assert.NotEmpty(t, record.ID)
}

func TestSaveSurfacesStoreErrors(t *testing.T) {
	ctx := context.Background()
	svc := newService(failingStore{memory.NewRepository()})

	session, err := svc.NewSession(ctx)
	require.NoError(t, err)
	require.NoError(t, session.Controller().LoadFormation(models.ODKOffense, "Pistol"))

	_, _, err = svc.Save(ctx, session, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	assert.True(t, session.IsNew())
}

func TestDraftRecovery(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	svc := newService(repo)

	first, err := svc.NewSession(ctx)
	require.NoError(t, err)
	_, ok := first.PendingDraft()
	assert.False(t, ok)
	require.NoError(t, first.Controller().LoadFormation(models.ODKOffense, "Trips Right"))
	first.Flush()

	second, err := svc.NewSession(ctx)
	require.NoError(t, err)
	draft, ok := second.PendingDraft()
	require.True(t, ok)
	assert.Equal(t, "Trips Right", draft.Snapshot.Formation)
	assert.Empty(t, second.Model().Players())

	require.NoError(t, second.RestoreDraft())
	assert.Equal(t, "Trips Right", second.Model().Formation())
	assert.Len(t, second.Model().Players(), 11)
	assert.ErrorIs(t, second.RestoreDraft(), ErrNoDraft)

	_, _, err = svc.Save(ctx, second, false)
	require.NoError(t, err)
	_, err = repo.LoadDraft(ctx, NewPlayDraftKey)
	assert.ErrorIs(t, err, repository.ErrNotFound, "a successful save clears the draft")
}

func TestDiscardDraft(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	svc := newService(repo)
	require.NoError(t, repo.SaveDraft(ctx, NewPlayDraftKey, models.Snapshot{Formation: "Empty", ODK: models.ODKOffense}))

	session, err := svc.NewSession(ctx)
	require.NoError(t, err)
	require.NoError(t, session.DiscardDraft(ctx))
	_, ok := session.PendingDraft()
	assert.False(t, ok)
	_, err = repo.LoadDraft(ctx, NewPlayDraftKey)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEditingSavedPlayDoesNotAutosave(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	svc := newService(repo)

	session, err := svc.NewSession(ctx)
	require.NoError(t, err)
	require.NoError(t, session.Controller().LoadFormation(models.ODKOffense, "Shotgun"))
	record, _, err := svc.Save(ctx, session, false)
	require.NoError(t, err)

	opened, err := svc.OpenSession(ctx, record.ID)
	require.NoError(t, err)
	assert.False(t, opened.IsNew())
	require.NoError(t, opened.Controller().SetAssignment(label(t, opened, "X").ID, "Go"))
	opened.Flush()

	_, err = repo.LoadDraft(ctx, NewPlayDraftKey)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.OpenSession(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestValidatePlayAndAudit(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	svc := newService(repo)

	session := offsidesSession(t, svc)
	session.Name = "Bad Split"
	bad, _, err := svc.Save(ctx, session, true)
	require.NoError(t, err)

	good, err := svc.NewSession(ctx)
	require.NoError(t, err)
	require.NoError(t, good.Controller().LoadFormation(models.ODKOffense, "Pro Set"))
	_, _, err = svc.Save(ctx, good, false)
	require.NoError(t, err)

	_, result, err := svc.ValidatePlay(ctx, bad.ID)
	require.NoError(t, err)
	assert.False(t, result.IsValid)

	report, err := svc.ValidationReport(ctx, bad.ID)
	require.NoError(t, err)
	assert.Contains(t, report, "Bad Split")
	assert.Contains(t, report, "Offsides")

	audit, failing, err := svc.AuditReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failing)
	assert.Contains(t, audit, "1 of 2 plays")
	assert.Contains(t, audit, "Bad Split")
}

func TestPruneDrafts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()
	svc := newService(repo)
	require.NoError(t, repo.SaveDraft(ctx, NewPlayDraftKey, models.Snapshot{}))

	svc.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	n, err := svc.PruneDrafts(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReports(t *testing.T) {
	svc := newService(memory.NewRepository())

	report, err := svc.FormationsReport("d")
	require.NoError(t, err)
	assert.Contains(t, report, "Defense Formations")
	assert.Contains(t, report, "Nickel")
	assert.Contains(t, report, "Base, Blitz")

	_, err = svc.FormationsReport("x")
	assert.ErrorIs(t, err, ErrUnknownODK)

	report, err = svc.FormationReport("offense", "shotgn")
	require.NoError(t, err)
	assert.Contains(t, report, "*Shotgun*")
	assert.Contains(t, report, "QB")

	_, err = svc.FormationReport("o", "zzzzzzzz")
	assert.ErrorIs(t, err, catalog.ErrFormationNotFound)

	report, err = svc.AssignmentsReport("lt", "")
	require.NoError(t, err)
	assert.Contains(t, report, models.BlockLabel)

	_, err = svc.AssignmentsReport("XYZ", "")
	assert.ErrorIs(t, err, ErrUnknownPosition)

	report, err = svc.CoverageReport("cover 3")
	require.NoError(t, err)
	assert.Contains(t, report, "*Cover 3*")
	assert.Contains(t, report, "Corners")

	_, err = svc.CoverageReport("Cover 9")
	assert.ErrorIs(t, err, ErrUnknownCoverage)

	report, err = svc.PlaysReport(context.Background())
	require.NoError(t, err)
	assert.Contains(t, report, "No plays saved")
}

func TestReportsEscapeMarkdown(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.NewRepository())

	session, err := svc.NewSession(ctx)
	require.NoError(t, err)
	require.NoError(t, session.Controller().LoadFormation(models.ODKOffense, "Shotgun"))
	session.Name = "Y_Cross *hot*"
	record, _, err := svc.Save(ctx, session, false)
	require.NoError(t, err)

	plays, err := svc.PlaysReport(ctx)
	require.NoError(t, err)
	assert.Contains(t, plays, `Y\_Cross \*hot\*`)
	assert.NotContains(t, plays, "Y_Cross")

	report, err := svc.ValidationReport(ctx, record.ID)
	require.NoError(t, err)
	assert.Contains(t, report, `Y\_Cross \*hot\*`)
}
