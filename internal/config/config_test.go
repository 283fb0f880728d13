package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/playbook/internal/validator"
)

func TestDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.False(t, cfg.BotEnabled())
	assert.Equal(t, "playbook.db", cfg.Storage.DBPath)
	assert.Equal(t, 2*time.Second, cfg.Editor.AutosaveInterval)
	assert.Equal(t, 168*time.Hour, cfg.Scheduler.DraftRetention)
	assert.Equal(t, ":80", cfg.HTTP.Addr)
	assert.Equal(t, validator.DefaultTolerances(), cfg.Validator.Tolerances())
}

func TestOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("CHAT_ID", "-100200")
	t.Setenv("MIN_ON_LINE", "6")
	t.Setenv("NEUTRAL_ZONE_BUFFER", "2.5")
	t.Setenv("AUTOSAVE_INTERVAL", "500ms")

	cfg, err := New()
	require.NoError(t, err)
	assert.True(t, cfg.BotEnabled())
	assert.Equal(t, int64(-100200), cfg.TelegramBot.ChatID)
	assert.Equal(t, 500*time.Millisecond, cfg.Editor.AutosaveInterval)

	tol := cfg.Validator.Tolerances()
	assert.Equal(t, 6, tol.MinOnLine)
	assert.Equal(t, 2.5, tol.NeutralZoneBuffer)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad cron", map[string]string{"AUDIT_SCHEDULE": "every monday"}},
		{"token without chat", map[string]string{"TELEGRAM_TOKEN": "123:abc"}},
		{"prune hour", map[string]string{"PRUNE_HOUR": "24"}},
		{"autosave", map[string]string{"AUTOSAVE_INTERVAL": "0s"}},
		{"not a number", map[string]string{"MAX_PLAYERS": "eleven"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := New()
			assert.Error(t, err)
		})
	}
}
