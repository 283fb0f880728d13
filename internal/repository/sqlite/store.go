// Package sqlite persists plays and drafts in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/omarshaarawi/playbook/internal/repository"
	"github.com/omarshaarawi/playbook/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store keeps plays and drafts in SQLite. Snapshots are stored as JSON.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

// Open opens the database at path and applies the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SavePlay inserts a play when its ID is empty and replaces it otherwise.
// CreatedAt of an existing row is kept.
func (s *Store) SavePlay(ctx context.Context, play *models.PlayRecord) error {
	snapshot, err := json.Marshal(play.Snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	now := s.now().UTC()
	if play.ID == "" {
		play.ID = uuid.NewString()
		play.CreatedAt = now
	} else if play.CreatedAt.IsZero() {
		play.CreatedAt = now
	}
	play.UpdatedAt = now

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO plays (id, code, name, odk, formation, play_type, snapshot, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   code = excluded.code,
		   name = excluded.name,
		   odk = excluded.odk,
		   formation = excluded.formation,
		   play_type = excluded.play_type,
		   snapshot = excluded.snapshot,
		   updated_at = excluded.updated_at`,
		play.ID, play.Code, play.Name, play.ODK, play.Formation, play.PlayType,
		string(snapshot), toMillis(play.CreatedAt), toMillis(play.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save play %s: %w", play.ID, err)
	}

	var created int64
	if err := s.db.QueryRowContext(ctx, `SELECT created_at FROM plays WHERE id = ?`, play.ID).Scan(&created); err != nil {
		return fmt.Errorf("read back play %s: %w", play.ID, err)
	}
	play.CreatedAt = fromMillis(created)
	return nil
}

const playColumns = `id, code, name, odk, formation, play_type, snapshot, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanPlay(row scanner) (models.PlayRecord, error) {
	var (
		p                models.PlayRecord
		snapshot         string
		created, updated int64
	)
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.ODK, &p.Formation, &p.PlayType, &snapshot, &created, &updated); err != nil {
		return models.PlayRecord{}, err
	}
	if err := json.Unmarshal([]byte(snapshot), &p.Snapshot); err != nil {
		return models.PlayRecord{}, fmt.Errorf("decode snapshot of play %s: %w", p.ID, err)
	}
	p.CreatedAt = fromMillis(created)
	p.UpdatedAt = fromMillis(updated)
	return p, nil
}

func (s *Store) GetPlay(ctx context.Context, id string) (models.PlayRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+playColumns+` FROM plays WHERE id = ?`, id)
	p, err := scanPlay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PlayRecord{}, fmt.Errorf("play %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return models.PlayRecord{}, fmt.Errorf("get play %s: %w", id, err)
	}
	return p, nil
}

// ListPlays returns every play, most recently updated first.
func (s *Store) ListPlays(ctx context.Context) ([]models.PlayRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+playColumns+` FROM plays ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list plays: %w", err)
	}
	defer rows.Close()

	plays := []models.PlayRecord{}
	for rows.Next() {
		p, err := scanPlay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan play: %w", err)
		}
		plays = append(plays, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plays: %w", err)
	}
	return plays, nil
}

func (s *Store) DeletePlay(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM plays WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete play %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete play %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("play %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (s *Store) SaveDraft(ctx context.Context, key string, snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO drafts (key, snapshot, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET snapshot = excluded.snapshot, saved_at = excluded.saved_at`,
		key, string(data), toMillis(s.now()),
	)
	if err != nil {
		return fmt.Errorf("save draft %s: %w", key, err)
	}
	return nil
}

func (s *Store) LoadDraft(ctx context.Context, key string) (models.Draft, error) {
	var (
		data  string
		saved int64
	)
	err := s.db.QueryRowContext(ctx, `SELECT snapshot, saved_at FROM drafts WHERE key = ?`, key).Scan(&data, &saved)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Draft{}, fmt.Errorf("draft %s: %w", key, repository.ErrNotFound)
	}
	if err != nil {
		return models.Draft{}, fmt.Errorf("load draft %s: %w", key, err)
	}
	d := models.Draft{Key: key, SavedAt: fromMillis(saved)}
	if err := json.Unmarshal([]byte(data), &d.Snapshot); err != nil {
		return models.Draft{}, fmt.Errorf("decode draft %s: %w", key, err)
	}
	return d, nil
}

// ClearDraft removes a draft. Clearing a missing draft is not an error.
func (s *Store) ClearDraft(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clear draft %s: %w", key, err)
	}
	return nil
}

// PruneDrafts deletes drafts saved before cutoff and reports how many went.
func (s *Store) PruneDrafts(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE saved_at < ?`, toMillis(cutoff))
	if err != nil {
		return 0, fmt.Errorf("prune drafts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune drafts: %w", err)
	}
	return int(n), nil
}
