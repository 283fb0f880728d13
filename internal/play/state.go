package play

import (
	"fmt"
	"slices"

	"github.com/omarshaarawi/playbook/internal/models"
)

// PlayerState captures everything needed to put one player back the way
// they were: the player and their hand-drawn route, if any. Derived routes
// are not captured; they follow from the player.
type PlayerState struct {
	Player      models.Player
	CustomRoute *models.Route
}

func (m *Model) PlayerState(playerID string) (PlayerState, error) {
	p, err := m.find(playerID)
	if err != nil {
		return PlayerState{}, err
	}
	state := PlayerState{Player: p.Clone()}
	if r, ok := m.customRoute(playerID); ok {
		c := r.Clone()
		state.CustomRoute = &c
	}
	return state, nil
}

// RestorePlayerState replaces a player with a captured state and
// regenerates derived routes.
func (m *Model) RestorePlayerState(state PlayerState) error {
	p, err := m.find(state.Player.ID)
	if err != nil {
		return err
	}

	*p = state.Player.Clone()
	if p.IsPrimary {
		for i := range m.players {
			if m.players[i].ID != p.ID {
				m.players[i].IsPrimary = false
			}
		}
	}

	m.dropCustomRoute(p.ID)
	if state.CustomRoute != nil {
		m.routes = append(m.routes, state.CustomRoute.Clone())
	}
	m.RecomputeRoutes()
	m.syncPrimary()
	return nil
}

// ApplyPlayerChange moves a player from one captured state to another,
// touching only the fields that differ between the two. Anything changed
// since the capture and not covered by the change, such as a drag or a
// primary toggle, is kept.
func (m *Model) ApplyPlayerChange(from, to PlayerState) error {
	if from.Player.ID != to.Player.ID {
		return fmt.Errorf("player state change spans %s and %s", from.Player.ID, to.Player.ID)
	}
	p, err := m.find(to.Player.ID)
	if err != nil {
		return err
	}

	a, b := from.Player, to.Player
	if a.Position != b.Position {
		p.Position = b.Position
	}
	if a.Label != b.Label {
		p.Label = b.Label
	}
	if a.Point != b.Point {
		p.Point = b.Point
	}
	if a.Assignment != b.Assignment {
		p.Assignment = b.Assignment
	}
	if a.BlockType != b.BlockType {
		p.BlockType = b.BlockType
	}
	if !samePoint(a.BlockDirection, b.BlockDirection) {
		p.BlockDirection = clonePoint(b.BlockDirection)
	}
	if a.MotionType != b.MotionType {
		p.MotionType = b.MotionType
	}
	if a.MotionDirection != b.MotionDirection {
		p.MotionDirection = b.MotionDirection
	}
	if a.MotionManual != b.MotionManual {
		p.MotionManual = b.MotionManual
	}
	if !samePoint(a.MotionEndpoint, b.MotionEndpoint) {
		p.MotionEndpoint = clonePoint(b.MotionEndpoint)
	}
	if !samePoint(a.MotionControl, b.MotionControl) {
		p.MotionControl = clonePoint(b.MotionControl)
	}
	if a.CoverageRole != b.CoverageRole {
		p.CoverageRole = b.CoverageRole
	}
	if a.CoverageDepth != b.CoverageDepth {
		p.CoverageDepth = b.CoverageDepth
	}
	if a.CoverageDescription != b.CoverageDescription {
		p.CoverageDescription = b.CoverageDescription
	}
	if a.BlitzGap != b.BlitzGap {
		p.BlitzGap = b.BlitzGap
	}
	if !samePoint(a.ZoneEndpoint, b.ZoneEndpoint) {
		p.ZoneEndpoint = clonePoint(b.ZoneEndpoint)
	}
	if a.IsPrimary != b.IsPrimary {
		p.IsPrimary = b.IsPrimary
		if p.IsPrimary {
			for i := range m.players {
				if m.players[i].ID != p.ID {
					m.players[i].IsPrimary = false
				}
			}
		}
	}
	if p.Side == models.SideOffense {
		updateMotion(p)
	}

	if !sameRoute(from.CustomRoute, to.CustomRoute) {
		m.dropCustomRoute(p.ID)
		if to.CustomRoute != nil {
			m.routes = append(m.routes, to.CustomRoute.Clone())
		}
	}
	m.RecomputeRoutes()
	m.syncPrimary()
	return nil
}

func samePoint(a, b *models.Point) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func clonePoint(p *models.Point) *models.Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func sameRoute(a, b *models.Route) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && slices.Equal(a.Points, b.Points)
}
