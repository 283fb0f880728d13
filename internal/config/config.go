package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/omarshaarawi/playbook/internal/validator"
	"github.com/robfig/cron/v3"
)

type Config struct {
	TelegramBot TelegramBot
	Storage     Storage
	Editor      Editor
	Scheduler   Scheduler
	HTTP        HTTP
	Validator   Validator
}

// TelegramBot is optional; the bot stays off without a token.
type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type Storage struct {
	DBPath         string `envconfig:"PLAYBOOK_DB_PATH" default:"playbook.db"`
	FormationsFile string `envconfig:"FORMATIONS_FILE"`
}

type Editor struct {
	AutosaveInterval time.Duration `envconfig:"AUTOSAVE_INTERVAL" default:"2s"`
}

type Scheduler struct {
	Timezone       string        `envconfig:"TIMEZONE" default:"America/Chicago"`
	DraftRetention time.Duration `envconfig:"DRAFT_RETENTION" default:"168h"`
	PruneHour      uint          `envconfig:"PRUNE_HOUR" default:"3"`
	AuditSchedule  string        `envconfig:"AUDIT_SCHEDULE" default:"30 7 * * 1"`
}

type HTTP struct {
	Addr string `envconfig:"HTTP_ADDR" default:":80"`
}

type Validator struct {
	NeutralZoneBuffer       float64 `envconfig:"NEUTRAL_ZONE_BUFFER" default:"5"`
	OnLineDepth             float64 `envconfig:"ON_LINE_DEPTH" default:"20"`
	ExpectedLinemen         int     `envconfig:"EXPECTED_LINEMEN" default:"5"`
	MinOnLine               int     `envconfig:"MIN_ON_LINE" default:"7"`
	MaxPlayers              int     `envconfig:"MAX_PLAYERS" default:"11"`
	TackleBoxHalfWidth      float64 `envconfig:"TACKLE_BOX_HALF_WIDTH" default:"75"`
	MaxIneligibleSplit      int     `envconfig:"MAX_INELIGIBLE_SPLIT" default:"0"`
	BoxHalfWidth            float64 `envconfig:"BOX_HALF_WIDTH" default:"120"`
	BoxDepth                float64 `envconfig:"BOX_DEPTH" default:"90"`
	MinDefendersInBox       int     `envconfig:"MIN_DEFENDERS_IN_BOX" default:"6"`
	DefensiveOffsidesBuffer float64 `envconfig:"DEFENSIVE_OFFSIDES_BUFFER" default:"5"`
}

func (v Validator) Tolerances() validator.Tolerances {
	return validator.Tolerances{
		NeutralZoneBuffer:       v.NeutralZoneBuffer,
		OnLineDepth:             v.OnLineDepth,
		ExpectedLinemen:         v.ExpectedLinemen,
		MinOnLine:               v.MinOnLine,
		MaxPlayers:              v.MaxPlayers,
		TackleBoxHalfWidth:      v.TackleBoxHalfWidth,
		MaxIneligibleSplit:      v.MaxIneligibleSplit,
		BoxHalfWidth:            v.BoxHalfWidth,
		BoxDepth:                v.BoxDepth,
		MinDefendersInBox:       v.MinDefendersInBox,
		DefensiveOffsidesBuffer: v.DefensiveOffsidesBuffer,
	}
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.TelegramBot.Token != "" && c.TelegramBot.ChatID == 0 {
		return fmt.Errorf("CHAT_ID is required when TELEGRAM_TOKEN is set")
	}
	if c.Scheduler.AuditSchedule != "" {
		if _, err := cron.ParseStandard(c.Scheduler.AuditSchedule); err != nil {
			return fmt.Errorf("invalid AUDIT_SCHEDULE %q: %w", c.Scheduler.AuditSchedule, err)
		}
	}
	if c.Scheduler.PruneHour > 23 {
		return fmt.Errorf("PRUNE_HOUR must be between 0 and 23, got %d", c.Scheduler.PruneHour)
	}
	if c.Editor.AutosaveInterval <= 0 {
		return fmt.Errorf("AUTOSAVE_INTERVAL must be positive, got %s", c.Editor.AutosaveInterval)
	}
	return nil
}

// BotEnabled reports whether a Telegram token was configured.
func (c *Config) BotEnabled() bool {
	return c.TelegramBot.Token != ""
}
