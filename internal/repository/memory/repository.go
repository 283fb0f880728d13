package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/omarshaarawi/playbook/internal/repository"
)

// Repository keeps plays and drafts in memory. Every read returns a copy.
type Repository struct {
	plays  map[string]models.PlayRecord
	drafts map[string]models.Draft
	now    func() time.Time
	mu     sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{
		plays:  make(map[string]models.PlayRecord),
		drafts: make(map[string]models.Draft),
		now:    time.Now,
	}
}

// SavePlay inserts a play when its ID is empty and replaces it otherwise.
func (r *Repository) SavePlay(_ context.Context, play *models.PlayRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	if play.ID == "" {
		play.ID = uuid.NewString()
		play.CreatedAt = now
	} else if existing, ok := r.plays[play.ID]; ok {
		play.CreatedAt = existing.CreatedAt
	} else if play.CreatedAt.IsZero() {
		play.CreatedAt = now
	}
	play.UpdatedAt = now

	stored := *play
	stored.Snapshot = play.Snapshot.Clone()
	r.plays[play.ID] = stored
	return nil
}

func (r *Repository) GetPlay(_ context.Context, id string) (models.PlayRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	play, ok := r.plays[id]
	if !ok {
		return models.PlayRecord{}, fmt.Errorf("play %s: %w", id, repository.ErrNotFound)
	}
	play.Snapshot = play.Snapshot.Clone()
	return play, nil
}

// ListPlays returns every play, most recently updated first.
func (r *Repository) ListPlays(_ context.Context) ([]models.PlayRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plays := make([]models.PlayRecord, 0, len(r.plays))
	for _, p := range r.plays {
		p.Snapshot = p.Snapshot.Clone()
		plays = append(plays, p)
	}
	sort.Slice(plays, func(i, j int) bool {
		if plays[i].UpdatedAt.Equal(plays[j].UpdatedAt) {
			return plays[i].ID < plays[j].ID
		}
		return plays[i].UpdatedAt.After(plays[j].UpdatedAt)
	})
	return plays, nil
}

func (r *Repository) DeletePlay(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plays[id]; !ok {
		return fmt.Errorf("play %s: %w", id, repository.ErrNotFound)
	}
	delete(r.plays, id)
	return nil
}

func (r *Repository) SaveDraft(_ context.Context, key string, snapshot models.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[key] = models.Draft{Key: key, Snapshot: snapshot.Clone(), SavedAt: r.now().UTC()}
	return nil
}

func (r *Repository) LoadDraft(_ context.Context, key string) (models.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, ok := r.drafts[key]
	if !ok {
		return models.Draft{}, fmt.Errorf("draft %s: %w", key, repository.ErrNotFound)
	}
	draft.Snapshot = draft.Snapshot.Clone()
	return draft, nil
}

// ClearDraft removes a draft. Clearing a missing draft is not an error.
func (r *Repository) ClearDraft(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, key)
	return nil
}

// PruneDrafts deletes drafts saved before cutoff and reports how many went.
func (r *Repository) PruneDrafts(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for key, d := range r.drafts {
		if d.SavedAt.Before(cutoff) {
			delete(r.drafts, key)
			pruned++
		}
	}
	return pruned, nil
}
