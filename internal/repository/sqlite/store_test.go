package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/omarshaarawi/playbook/internal/repository"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "playbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func sampleSnapshot() models.Snapshot {
	dir := models.Point{X: 310, Y: 190}
	return models.Snapshot{
		Formation: "Shotgun",
		ODK:       models.ODKOffense,
		PlayType:  "Pass",
		Players: []models.Player{
			{ID: "c", Position: "C", Label: "C", Side: models.SideOffense, Point: models.Point{X: 350, Y: 215}, BlockType: "Pass Block", BlockDirection: &dir},
			{ID: "x", Position: "WR", Label: "X", Side: models.SideOffense, Point: models.Point{X: 80, Y: 215}, Assignment: "Go", IsPrimary: true},
		},
		Routes: []models.Route{
			{ID: "route-x", PlayerID: "x", Points: []models.Point{{X: 80, Y: 215}, {X: 80, Y: 20}}},
		},
		Attributes: map[string]string{"hash": "left"},
	}
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playbook.db")
	first, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestSaveAndGetPlay(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)

	play := &models.PlayRecord{Name: "Four Verticals", Code: "O-101", ODK: models.ODKOffense, Formation: "Shotgun", PlayType: "Pass", Snapshot: sampleSnapshot()}
	require.NoError(t, store.SavePlay(ctx, play))
	require.NotEmpty(t, play.ID)
	assert.False(t, play.CreatedAt.IsZero())

	got, err := store.GetPlay(ctx, play.ID)
	require.NoError(t, err)
	assert.Equal(t, "Four Verticals", got.Name)
	assert.Equal(t, "O-101", got.Code)
	assert.Equal(t, sampleSnapshot(), got.Snapshot)
	assert.Equal(t, play.CreatedAt, got.CreatedAt)
}

func TestSavePlayKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	store.now = fixedClock(time.Date(2026, time.September, 1, 18, 0, 0, 0, time.UTC))

	play := &models.PlayRecord{Name: "Dive", ODK: models.ODKOffense}
	require.NoError(t, store.SavePlay(ctx, play))
	created := play.CreatedAt

	update := &models.PlayRecord{ID: play.ID, Name: "Dive Right", ODK: models.ODKOffense}
	require.NoError(t, store.SavePlay(ctx, update))
	assert.Equal(t, created, update.CreatedAt)
	assert.True(t, update.UpdatedAt.After(created))

	got, err := store.GetPlay(ctx, play.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dive Right", got.Name)
	assert.Equal(t, created, got.CreatedAt)
}

func TestListPlaysNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	store.now = fixedClock(time.Date(2026, time.September, 1, 18, 0, 0, 0, time.UTC))

	first := &models.PlayRecord{Name: "Dive", ODK: models.ODKOffense}
	second := &models.PlayRecord{Name: "Cover 3 Sky", ODK: models.ODKDefense}
	require.NoError(t, store.SavePlay(ctx, first))
	require.NoError(t, store.SavePlay(ctx, second))

	plays, err := store.ListPlays(ctx)
	require.NoError(t, err)
	require.Len(t, plays, 2)
	assert.Equal(t, "Cover 3 Sky", plays[0].Name)

	require.NoError(t, store.SavePlay(ctx, first))
	plays, err = store.ListPlays(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dive", plays[0].Name)
}

func TestDeletePlay(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)

	play := &models.PlayRecord{Name: "Dive", ODK: models.ODKOffense}
	require.NoError(t, store.SavePlay(ctx, play))
	require.NoError(t, store.DeletePlay(ctx, play.ID))

	_, err := store.GetPlay(ctx, play.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.DeletePlay(ctx, play.ID), repository.ErrNotFound)
}

func TestDrafts(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	store.now = fixedClock(time.Date(2026, time.September, 1, 18, 0, 0, 0, time.UTC))

	_, err := store.LoadDraft(ctx, "new-play")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.SaveDraft(ctx, "new-play", sampleSnapshot()))
	draft, err := store.LoadDraft(ctx, "new-play")
	require.NoError(t, err)
	assert.Equal(t, "new-play", draft.Key)
	assert.Equal(t, sampleSnapshot(), draft.Snapshot)

	next := sampleSnapshot()
	next.Formation = "Empty"
	require.NoError(t, store.SaveDraft(ctx, "new-play", next))
	draft, err = store.LoadDraft(ctx, "new-play")
	require.NoError(t, err)
	assert.Equal(t, "Empty", draft.Snapshot.Formation)

	require.NoError(t, store.ClearDraft(ctx, "new-play"))
	require.NoError(t, store.ClearDraft(ctx, "new-play"))
	_, err = store.LoadDraft(ctx, "new-play")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPruneDrafts(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	start := time.Date(2026, time.September, 1, 18, 0, 0, 0, time.UTC)
	store.now = fixedClock(start)

	require.NoError(t, store.SaveDraft(ctx, "old", models.Snapshot{Formation: "I-Form"}))
	require.NoError(t, store.SaveDraft(ctx, "new", models.Snapshot{Formation: "Pistol"}))

	pruned, err := store.PruneDrafts(ctx, start.Add(90*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	_, err = store.LoadDraft(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = store.LoadDraft(ctx, "new")
	assert.NoError(t, err)
}
