package play

import (
	"fmt"
	"sort"
	"strings"

	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/geometry"
	"github.com/omarshaarawi/playbook/internal/models"
)

// ApplyCoverage hands every defensive back and linebacker the role the
// coverage gives them, overwriting blitzes and manual zone edits. Defensive
// linemen are left alone.
func (m *Model) ApplyCoverage(name string) error {
	canonical := ""
	for _, n := range catalog.CoverageNames() {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			canonical = n
		}
	}
	if canonical == "" {
		return fmt.Errorf("%w: %q", ErrUnknownCoverage, name)
	}

	m.coverage = canonical
	for id, role := range m.coverageRoles() {
		p, err := m.find(id)
		if err != nil {
			continue
		}
		setRole(p, role)
	}
	return nil
}

// coverageRoles works out each eligible defender's role under the current
// coverage. Corners, nickels and linebackers are numbered left to right,
// safeties deepest first.
func (m *Model) coverageRoles() map[string]models.CoverageRole {
	table, ok := catalog.Coverage(m.coverage)
	if !ok {
		return nil
	}

	classes := make(map[string][]models.Player)
	for _, p := range m.players {
		if p.Side != models.SideDefense || p.IsDummy {
			continue
		}
		if class := catalog.CoverageClass(p.Position); class != "" {
			classes[class] = append(classes[class], p)
		}
	}

	roles := make(map[string]models.CoverageRole)
	for class, players := range classes {
		sort.SliceStable(players, func(i, j int) bool {
			a, b := players[i].Point, players[j].Point
			if class == catalog.ClassSafety && a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X < b.X
		})
		for i, p := range players {
			if role, ok := table.RoleAt(class, i); ok {
				roles[p.ID] = role
			}
		}
	}
	return roles
}

func setRole(p *models.Player, role models.CoverageRole) {
	p.CoverageRole = role.Name
	p.CoverageDepth = role.Depth
	p.CoverageDescription = role.Description
	p.BlitzGap = ""
	p.ZoneEndpoint = nil
}

func clearRole(p *models.Player) {
	p.CoverageRole = ""
	p.CoverageDepth = ""
	p.CoverageDescription = ""
}

// SetBlitz sends a defender at a gap, clearing their coverage role. An empty
// gap removes the blitz.
func (m *Model) SetBlitz(playerID, gap string) error {
	p, err := m.findDefense(playerID)
	if err != nil {
		return err
	}
	p.BlitzGap = gap
	p.ZoneEndpoint = nil
	if gap != "" {
		clearRole(p)
	}
	return nil
}

// SetCoverageRole gives a defender a zone or man role by hand, clearing any
// blitz.
func (m *Model) SetCoverageRole(playerID, role string) error {
	p, err := m.findDefense(playerID)
	if err != nil {
		return err
	}
	if role == "" {
		clearRole(p)
		p.ZoneEndpoint = nil
		return nil
	}
	setRole(p, catalog.Role(role))
	return nil
}

// SetZoneEndpoint overrides where a defender's zone drop or blitz ends.
func (m *Model) SetZoneEndpoint(playerID string, end *models.Point) error {
	p, err := m.findDefense(playerID)
	if err != nil {
		return err
	}
	if end == nil {
		p.ZoneEndpoint = nil
		return nil
	}
	e := *end
	p.ZoneEndpoint = &e
	return nil
}

// SetLaneEndpoint sets where a special teams player's lane ends. Both
// kicking and return units use it.
func (m *Model) SetLaneEndpoint(playerID string, end models.Point) error {
	if m.odk != models.ODKSpecialTeam {
		return ErrNotSpecialTeams
	}
	p, err := m.find(playerID)
	if err != nil {
		return err
	}
	p.ZoneEndpoint = &end
	return nil
}

// ResetToRole drops a defender's manual blitz or zone edit and restores the
// role the current coverage gives them. With no coverage the role is
// cleared.
func (m *Model) ResetToRole(playerID string) error {
	p, err := m.findDefense(playerID)
	if err != nil {
		return err
	}
	p.BlitzGap = ""
	p.ZoneEndpoint = nil
	if role, ok := m.coverageRoles()[playerID]; ok {
		setRole(p, role)
		return nil
	}
	clearRole(p)
	return nil
}

// ResetToTechnique restores a player's default technique. Offensive linemen
// go back to a plain run block, other offensive players lose their dragged
// block and motion overrides, defensive linemen lose any blitz or zone, and
// everyone else on defense returns to their coverage role.
func (m *Model) ResetToTechnique(playerID string) error {
	p, err := m.find(playerID)
	if err != nil {
		return err
	}

	switch {
	case p.Side == models.SideOffense:
		p.BlockDirection = nil
		if catalog.IsLineman(p.Position) {
			p.Assignment = ""
			p.BlockType = models.DefaultBlock
			m.dropCustomRoute(playerID)
		}
		p.MotionManual = false
		updateMotion(p)
		m.RecomputeRoutes()
		return nil
	case catalog.IsDefensiveLineman(p.Position):
		p.BlitzGap = ""
		p.ZoneEndpoint = nil
		clearRole(p)
		return nil
	}
	return m.ResetToRole(playerID)
}

// DefenderPath is the path a defender's assignment draws: a blitz lane bent
// around teammates, a zone drop, or a special teams lane. Players with no
// assignment get a single point.
func (m *Model) DefenderPath(playerID string) (models.Path, error) {
	p, err := m.find(playerID)
	if err != nil {
		return models.Path{}, err
	}
	start := p.Point

	if m.odk == models.ODKSpecialTeam {
		if p.ZoneEndpoint != nil {
			return models.Path{Points: []models.Point{start, *p.ZoneEndpoint}}, nil
		}
		return models.Path{Points: []models.Point{start}}, nil
	}
	if p.Side != models.SideDefense {
		return models.Path{}, fmt.Errorf("%w: %s", ErrNotDefense, playerID)
	}

	switch {
	case p.BlitzGap != "":
		target := geometry.GapPosition(p.BlitzGap, models.FieldCenterX, models.LineOfScrimmY, m.referenceLine())
		if p.ZoneEndpoint != nil {
			target = *p.ZoneEndpoint
		}
		var others []models.Point
		for _, o := range m.players {
			if o.ID != p.ID && o.Side == models.SideDefense {
				others = append(others, o.Point)
			}
		}
		return geometry.BlitzPath(start, target, others, models.FieldCenterX), nil
	case p.ZoneEndpoint != nil:
		return models.Path{Points: []models.Point{start, *p.ZoneEndpoint}}, nil
	case p.CoverageRole != "":
		return models.Path{Points: geometry.CoveragePath(p.CoverageRole, start, models.FieldCenterX, models.LineOfScrimmY)}, nil
	}
	return models.Path{Points: []models.Point{start}}, nil
}

// referenceLine is the ghost offensive line gaps are measured from.
func (m *Model) referenceLine() []models.Point {
	var line []models.Point
	for _, p := range m.referenceOffense {
		if catalog.IsLineman(p.Position) {
			line = append(line, p.Point)
		}
	}
	return line
}
