package editor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/omarshaarawi/playbook/internal/models"
)

// DefaultAutosaveInterval is how long the model must sit idle before a draft
// is written.
const DefaultAutosaveInterval = 2 * time.Second

const draftWriteTimeout = 5 * time.Second

// DraftStore is the durable key-value store drafts are kept in.
type DraftStore interface {
	SaveDraft(ctx context.Context, key string, snapshot models.Snapshot) error
	LoadDraft(ctx context.Context, key string) (models.Draft, error)
	ClearDraft(ctx context.Context, key string) error
}

// Autosaver writes a draft of a new play once edits pause. The snapshot is
// captured when Touch is called; the timer only writes that copy. Failed
// writes are logged and dropped.
type Autosaver struct {
	store     DraftStore
	key       string
	debounced func(func())

	// writeMu orders store writes so a clear never lands before a write
	// already in flight.
	writeMu sync.Mutex

	mu      sync.Mutex
	pending *models.Snapshot
}

func NewAutosaver(store DraftStore, key string, interval time.Duration) *Autosaver {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	return &Autosaver{
		store:     store,
		key:       key,
		debounced: debounce.New(interval),
	}
}

func (a *Autosaver) Key() string { return a.key }

// Touch records the latest state and restarts the idle timer.
func (a *Autosaver) Touch(snapshot models.Snapshot) {
	s := snapshot.Clone()
	a.mu.Lock()
	a.pending = &s
	a.mu.Unlock()
	a.debounced(a.flush)
}

// Flush writes any pending draft now.
func (a *Autosaver) Flush() {
	a.flush()
}

func (a *Autosaver) flush() {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	s := a.pending
	a.pending = nil
	a.mu.Unlock()
	if s == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), draftWriteTimeout)
	defer cancel()
	if err := a.store.SaveDraft(ctx, a.key, *s); err != nil {
		slog.Error("Failed to autosave draft", "key", a.key, "error", err)
		return
	}
	slog.Debug("Autosaved draft", "key", a.key, "players", len(s.Players))
}

// LoadDraft returns the stored draft for this key.
func (a *Autosaver) LoadDraft(ctx context.Context) (models.Draft, error) {
	return a.store.LoadDraft(ctx, a.key)
}

// ClearDraft drops any pending write and deletes the stored draft.
func (a *Autosaver) ClearDraft(ctx context.Context) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	a.pending = nil
	a.mu.Unlock()
	return a.store.ClearDraft(ctx, a.key)
}
