package validator

import (
	"math"

	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/models"
)

func (v *Validator) defenseFormation(players []models.Player) models.ValidationResult {
	var c collector
	v.countPlayers(&c, players)
	v.defenseOffsides(&c, players)

	inBox := 0
	for _, p := range players {
		depth := models.LineOfScrimmY - p.Point.Y
		if math.Abs(p.Point.X-models.FieldCenterX) <= v.tol.BoxHalfWidth && depth <= v.tol.BoxDepth {
			inBox++
		}
	}
	if inBox < v.tol.MinDefendersInBox {
		c.warnf("Only %d defenders in the box (expected at least %d)", inBox, v.tol.MinDefendersInBox)
	}
	return c.result()
}

func (v *Validator) defenseOffsides(c *collector, players []models.Player) {
	limit := models.LineOfScrimmY + v.tol.DefensiveOffsidesBuffer
	for _, p := range players {
		if p.Point.Y > limit {
			c.errorf("Offsides: %s is across the line of scrimmage", name(p))
		}
	}
}

func (v *Validator) defensePlay(players []models.Player, playType string) models.ValidationResult {
	var c collector
	if playType == catalog.PlayTypeBlitz {
		blitzing := false
		for _, p := range players {
			blitzing = blitzing || p.BlitzGap != ""
		}
		if !blitzing {
			c.warnf("Blitz call has no defender assigned a gap")
		}
	}
	return c.result()
}

// specialTeams applies the kicking or return unit's side rules. Scrimmage
// kicks snap from the line and need the usual numbers on it.
func (v *Validator) specialTeams(players []models.Player, formation string) models.ValidationResult {
	var c collector
	if len(players) > v.tol.MaxPlayers {
		c.errorf("Too many players on the field: %d (max %d)", len(players), v.tol.MaxPlayers)
	}

	kicking := true
	for _, p := range players {
		if p.Side == models.SideDefense {
			kicking = false
			break
		}
	}
	if !kicking {
		v.defenseOffsides(&c, players)
		return c.result()
	}

	v.offenseOffsides(&c, players)
	if scrimmageKicks[formation] {
		onLine := 0
		for _, p := range players {
			if v.onLine(p) {
				onLine++
			}
		}
		if onLine < v.tol.MinOnLine {
			c.errorf("Illegal formation: only %d players on the line of scrimmage (need at least %d)", onLine, v.tol.MinOnLine)
		}
	}
	return c.result()
}
