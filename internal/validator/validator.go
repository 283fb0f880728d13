// Package validator checks a play against formation legality rules. It never
// changes the play; failures come back as messages, errors blocking a save
// and warnings only advising.
package validator

import (
	"fmt"
	"math"
	"strings"

	"github.com/omarshaarawi/playbook/internal/geometry"
	"github.com/omarshaarawi/playbook/internal/models"
)

// Tolerances are the field-unit thresholds and counts the checks use.
type Tolerances struct {
	NeutralZoneBuffer       float64
	OnLineDepth             float64
	ExpectedLinemen         int
	MinOnLine               int
	MaxPlayers              int
	TackleBoxHalfWidth      float64
	MaxIneligibleSplit      int
	BoxHalfWidth            float64
	BoxDepth                float64
	MinDefendersInBox       int
	DefensiveOffsidesBuffer float64
}

func DefaultTolerances() Tolerances {
	return Tolerances{
		NeutralZoneBuffer:       5,
		OnLineDepth:             geometry.OnLineDepth,
		ExpectedLinemen:         5,
		MinOnLine:               7,
		MaxPlayers:              11,
		TackleBoxHalfWidth:      75,
		MaxIneligibleSplit:      0,
		BoxHalfWidth:            120,
		BoxDepth:                90,
		MinDefendersInBox:       6,
		DefensiveOffsidesBuffer: 5,
	}
}

// scrimmageKicks are special teams formations that snap from the line and so
// need seven men on it.
var scrimmageKicks = map[string]bool{
	"Punt":       true,
	"Field Goal": true,
}

type Validator struct {
	tol Tolerances
}

func New(tol Tolerances) *Validator {
	return &Validator{tol: tol}
}

func (v *Validator) Tolerances() Tolerances {
	return v.tol
}

// Validate runs the formation and offsides checks, then the checks for
// playType, and concatenates their messages. Reference players are ignored.
func (v *Validator) Validate(s models.Snapshot, playType string) models.ValidationResult {
	var players []models.Player
	for _, p := range s.Players {
		if !p.IsDummy {
			players = append(players, p)
		}
	}

	var formation, playChecks models.ValidationResult
	switch odkOf(s.ODK, players) {
	case models.ODKDefense:
		formation = v.defenseFormation(players)
		playChecks = v.defensePlay(players, playType)
	case models.ODKSpecialTeam:
		formation = v.specialTeams(players, s.Formation)
	default:
		formation = v.offenseFormation(players)
		playChecks = v.offensePlay(players, s.Routes, playType)
	}
	return formation.Merge(playChecks)
}

func odkOf(odk string, players []models.Player) string {
	if odk != "" {
		return odk
	}
	for _, p := range players {
		if p.Side == models.SideDefense {
			return models.ODKDefense
		}
	}
	return models.ODKOffense
}

type collector struct {
	errors   []string
	warnings []string
}

func (c *collector) errorf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

func (c *collector) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func (c *collector) result() models.ValidationResult {
	return models.ValidationResult{
		IsValid:  len(c.errors) == 0,
		Errors:   c.errors,
		Warnings: c.warnings,
	}
}

func (v *Validator) countPlayers(c *collector, players []models.Player) {
	switch n := len(players); {
	case n > v.tol.MaxPlayers:
		c.errorf("Too many players on the field: %d (max %d)", n, v.tol.MaxPlayers)
	case n < v.tol.MaxPlayers:
		c.warnf("Only %d players on the field (expected %d)", n, v.tol.MaxPlayers)
	}
}

func (v *Validator) onLine(p models.Player) bool {
	return math.Abs(p.Point.Y-models.LineOfScrimmY) <= v.tol.OnLineDepth
}

func name(p models.Player) string {
	if p.Label != "" && p.Label != p.Position {
		return fmt.Sprintf("%s (%s)", p.Label, p.Position)
	}
	return p.Position
}

func names(players []models.Player) string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = name(p)
	}
	return strings.Join(out, ", ")
}
