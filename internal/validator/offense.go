package validator

import (
	"math"
	"sort"

	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/geometry"
	"github.com/omarshaarawi/playbook/internal/models"
)

// offenseFormation covers numbering, alignment, offsides and pre-snap
// motion. It runs for every offensive play type.
func (v *Validator) offenseFormation(players []models.Player) models.ValidationResult {
	var c collector
	v.countPlayers(&c, players)

	var line []models.Player
	linemen := 0
	for _, p := range players {
		if !v.onLine(p) {
			continue
		}
		line = append(line, p)
		if catalog.IsLineman(p.Position) {
			linemen++
		}
	}

	if linemen != v.tol.ExpectedLinemen {
		c.errorf("Illegal formation: expected %d linemen on the line of scrimmage, found %d", v.tol.ExpectedLinemen, linemen)
	}
	if len(line) < v.tol.MinOnLine {
		c.errorf("Illegal formation: only %d players on the line of scrimmage (need at least %d)", len(line), v.tol.MinOnLine)
	}

	ball := snapperX(players)
	var split []models.Player
	for _, p := range players {
		if catalog.IsLineman(p.Position) && math.Abs(p.Point.X-ball) > v.tol.TackleBoxHalfWidth {
			split = append(split, p)
		}
	}
	if len(split) > v.tol.MaxIneligibleSplit {
		c.errorf("Illegal formation: ineligible players split outside the tackle box: %s", names(split))
	}

	if len(line) >= 2 {
		sort.Slice(line, func(i, j int) bool { return line[i].Point.X < line[j].Point.X })
		for _, end := range []models.Player{line[0], line[len(line)-1]} {
			if catalog.IsLineman(end.Position) {
				c.warnf("%s is an ineligible player at the end of the line", name(end))
			}
		}
	}

	v.offenseOffsides(&c, players)
	v.motion(&c, players)
	return c.result()
}

func (v *Validator) offenseOffsides(c *collector, players []models.Player) {
	limit := models.LineOfScrimmY - v.tol.NeutralZoneBuffer
	for _, p := range players {
		if p.Point.Y < limit {
			c.errorf("Offsides: %s is across the line of scrimmage", name(p))
		}
	}
}

// motion allows one man in motion at the snap. Shifts settle before the
// snap and are exempt.
func (v *Validator) motion(c *collector, players []models.Player) {
	var moving []models.Player
	for _, p := range players {
		if p.InMotion() && p.MotionType != models.MotionShift {
			moving = append(moving, p)
		}
	}
	if len(moving) > 1 {
		c.errorf("Illegal motion: %d players in motion at the snap (%s)", len(moving), names(moving))
	}

	limit := models.LineOfScrimmY - v.tol.NeutralZoneBuffer
	for _, p := range moving {
		if v.onLine(p) {
			c.warnf("%s goes in motion from the line of scrimmage", name(p))
		}
		if p.MotionEndpoint == nil {
			continue
		}
		end := *p.MotionEndpoint
		switch {
		case end.Y < limit:
			c.errorf("Illegal forward motion: %s crosses the line of scrimmage", name(p))
		case end.Y < p.Point.Y:
			c.warnf("%s is moving toward the line of scrimmage at the snap", name(p))
		}
	}
}

func snapperX(players []models.Player) float64 {
	for _, p := range players {
		if p.Position == "C" || p.Position == "LS" {
			return p.Point.X
		}
	}
	return models.FieldCenterX
}

// offensePlay checks that a pass has somebody to throw to and a run has
// somebody to carry it.
func (v *Validator) offensePlay(players []models.Player, routes []models.Route, playType string) models.ValidationResult {
	var c collector

	pass := false
	run := false
	switch playType {
	case catalog.PlayTypePass, catalog.PlayTypePlayAction, catalog.PlayTypeScreen:
		pass = true
	case catalog.PlayTypeRun:
		run = true
	case catalog.PlayTypeRPO:
		pass, run = true, true
	}

	if pass {
		receivers := 0
		for _, r := range routes {
			if _, isRun := geometry.ParseRun(r.Assignment); !isRun && len(r.Points) >= 2 {
				receivers++
			}
		}
		if receivers == 0 {
			c.warnf("Pass play has no receivers running routes")
		}
		primary := false
		for _, p := range players {
			primary = primary || p.IsPrimary
		}
		if !primary {
			c.warnf("Pass play has no primary receiver")
		}
	}

	if run {
		carrier := false
		for _, p := range players {
			if _, ok := geometry.ParseRun(p.Assignment); ok {
				carrier = true
			}
		}
		if !carrier {
			c.warnf("Run play has no ball carrier")
		}
	}
	return c.result()
}
