package play

import (
	"github.com/google/uuid"
	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/geometry"
	"github.com/omarshaarawi/playbook/internal/models"
)

// SetAssignment gives an offensive player a route, run or block label.
// "Block" switches the player to a block technique and drops any route.
// "Custom Route" keeps an existing hand-drawn route or leaves the player
// waiting for one to be drawn. Any other label drops a custom route.
func (m *Model) SetAssignment(playerID, label string) error {
	p, err := m.findOffense(playerID)
	if err != nil {
		return err
	}

	switch label {
	case models.BlockLabel:
		p.Assignment = ""
		if p.BlockType == "" {
			p.BlockType = models.DefaultBlock
		}
	case "":
		p.Assignment = ""
	default:
		p.Assignment = label
		p.BlockType = ""
		p.BlockDirection = nil
	}
	if p.Assignment != models.CustomRoute {
		m.dropCustomRoute(playerID)
	}
	m.RecomputeRoutes()
	return nil
}

// SetBlock sets a block technique, clearing any route assignment. An empty
// technique removes the block.
func (m *Model) SetBlock(playerID, blockType string) error {
	p, err := m.findOffense(playerID)
	if err != nil {
		return err
	}
	p.BlockType = blockType
	p.BlockDirection = nil
	if blockType != "" {
		p.Assignment = ""
		m.dropCustomRoute(playerID)
	}
	m.RecomputeRoutes()
	return nil
}

// SetBlockDirection overrides the computed block arrow tip. nil restores the
// computed default.
func (m *Model) SetBlockDirection(playerID string, tip *models.Point) error {
	p, err := m.findOffense(playerID)
	if err != nil {
		return err
	}
	if tip == nil {
		p.BlockDirection = nil
		return nil
	}
	t := *tip
	p.BlockDirection = &t
	return nil
}

// BlockArrow returns the tip of a blocker's arrow, or false when the player
// has no block.
func (m *Model) BlockArrow(playerID string) (models.Point, bool) {
	p, err := m.find(playerID)
	if err != nil || p.BlockType == "" {
		return models.Point{}, false
	}
	return geometry.BlockArrowEndpoint(p.Point, p.BlockType, models.FieldCenterX, p.BlockDirection), true
}

// SetMotion sets a pre-snap motion and recomputes its endpoint. None clears
// the endpoint and control point.
func (m *Model) SetMotion(playerID, motionType, direction string) error {
	p, err := m.findOffense(playerID)
	if err != nil {
		return err
	}
	if direction == "" {
		direction = models.DirectionIn
	}
	if motionType == "" {
		motionType = models.MotionNone
	}
	p.MotionType = motionType
	p.MotionDirection = direction
	p.MotionManual = false
	updateMotion(p)
	m.RecomputeRoutes()
	return nil
}

// SetMotionEndpoint pins a dragged motion endpoint.
func (m *Model) SetMotionEndpoint(playerID string, end models.Point) error {
	p, err := m.findOffense(playerID)
	if err != nil {
		return err
	}
	if !p.InMotion() {
		return nil
	}
	p.MotionEndpoint = &end
	p.MotionManual = true
	m.RecomputeRoutes()
	return nil
}

// SetMotionControl pins a dragged curve control point.
func (m *Model) SetMotionControl(playerID string, ctrl models.Point) error {
	p, err := m.findOffense(playerID)
	if err != nil {
		return err
	}
	if !p.InMotion() {
		return nil
	}
	p.MotionControl = &ctrl
	p.MotionManual = true
	return nil
}

func updateMotion(p *models.Player) {
	if !p.InMotion() {
		p.MotionEndpoint = nil
		p.MotionControl = nil
		p.MotionManual = false
		return
	}
	if p.MotionManual {
		return
	}
	onLine := geometry.OnLine(p.Point, models.LineOfScrimmY, geometry.OnLineDepth)
	end, ctrl := geometry.MotionEndpoint(p.Point, p.MotionType, p.MotionDirection, models.FieldCenterX, onLine)
	p.MotionEndpoint = &end
	p.MotionControl = ctrl
}

// MovePlayer repositions a player. A computed motion endpoint follows the
// player; a dragged one stays put.
func (m *Model) MovePlayer(playerID string, to models.Point) error {
	p, err := m.find(playerID)
	if err != nil {
		return err
	}
	p.Point = to
	updateMotion(p)
	m.RecomputeRoutes()
	return nil
}

// TogglePrimary flips the primary flag on an offensive player and clears it
// everywhere else, so at most one player holds it.
func (m *Model) TogglePrimary(playerID string) error {
	p, err := m.findOffense(playerID)
	if err != nil {
		return err
	}
	primary := !p.IsPrimary
	for i := range m.players {
		m.players[i].IsPrimary = false
	}
	p.IsPrimary = primary
	m.syncPrimary()
	return nil
}

func (m *Model) syncPrimary() {
	primary := make(map[string]bool)
	for _, p := range m.players {
		primary[p.ID] = p.IsPrimary
	}
	for i := range m.routes {
		m.routes[i].IsPrimary = primary[m.routes[i].PlayerID]
	}
}

// SetCustomRoute stores a hand-drawn route for a player and assigns them to
// it. The route keeps its id across re-edits.
func (m *Model) SetCustomRoute(playerID string, points []models.Point) error {
	p, err := m.findOffense(playerID)
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return ErrRouteTooShort
	}

	id := uuid.NewString()
	if existing, ok := m.customRoute(playerID); ok {
		id = existing.ID
	}
	m.dropCustomRoute(playerID)

	p.Assignment = models.CustomRoute
	p.BlockType = ""
	p.BlockDirection = nil
	m.routes = append(m.routes, models.Route{
		ID:         id,
		PlayerID:   playerID,
		Points:     append([]models.Point(nil), points...),
		Assignment: models.CustomRoute,
		IsPrimary:  p.IsPrimary,
		Custom:     true,
	})
	m.RecomputeRoutes()
	return nil
}

// ClearCustomRoute drops a player's hand-drawn route and their custom
// assignment.
func (m *Model) ClearCustomRoute(playerID string) error {
	p, err := m.find(playerID)
	if err != nil {
		return err
	}
	if p.Assignment == models.CustomRoute {
		p.Assignment = ""
	}
	m.dropCustomRoute(playerID)
	m.RecomputeRoutes()
	return nil
}

// CustomRoute returns a player's hand-drawn route.
func (m *Model) CustomRoute(playerID string) (models.Route, bool) {
	r, ok := m.customRoute(playerID)
	if !ok {
		return models.Route{}, false
	}
	return r.Clone(), true
}

func (m *Model) customRoute(playerID string) (models.Route, bool) {
	for _, r := range m.routes {
		if r.Custom && r.PlayerID == playerID {
			return r, true
		}
	}
	return models.Route{}, false
}

func (m *Model) dropCustomRoute(playerID string) {
	kept := m.routes[:0]
	for _, r := range m.routes {
		if r.Custom && r.PlayerID == playerID {
			continue
		}
		kept = append(kept, r)
	}
	m.routes = kept
}

// RecomputeRoutes regenerates every derived route from scratch. Custom routes
// are set aside first and re-appended unchanged; one whose player is no
// longer on "Custom Route" is discarded.
func (m *Model) RecomputeRoutes() {
	assigned := make(map[string]string, len(m.players))
	for _, p := range m.players {
		assigned[p.ID] = p.Assignment
	}

	var custom []models.Route
	for _, r := range m.routes {
		if r.Custom && assigned[r.PlayerID] == models.CustomRoute {
			custom = append(custom, r)
		}
	}

	line := m.offensiveLine()
	routes := make([]models.Route, 0, len(m.players)+len(custom))
	for _, p := range m.players {
		if p.Side != models.SideOffense || p.IsDummy {
			continue
		}
		if p.Assignment == "" || p.Assignment == models.CustomRoute {
			continue
		}
		points := derivedPath(p, line)
		if len(points) < 2 {
			continue
		}
		routes = append(routes, models.Route{
			ID:         "route-" + p.ID,
			PlayerID:   p.ID,
			Points:     points,
			Assignment: p.Assignment,
			IsPrimary:  p.IsPrimary,
		})
	}
	m.routes = append(routes, custom...)
}

func derivedPath(p models.Player, line []models.Point) []models.Point {
	start := p.SnapPoint()
	if hole, ok := geometry.ParseRun(p.Assignment); ok {
		return geometry.RunPath(start, hole, line, models.FieldCenterX, models.LineOfScrimmY)
	}
	return geometry.RoutePath(start, p.Assignment, models.LineOfScrimmY, geometry.IsLeftOfCenter(start, models.FieldCenterX))
}

func (m *Model) offensiveLine() []models.Point {
	var line []models.Point
	for _, p := range m.players {
		if p.Side == models.SideOffense && catalog.IsLineman(p.Position) {
			line = append(line, p.Point)
		}
	}
	return line
}
