// Package play holds the mutable state of one play being edited and keeps
// derived routes consistent with player assignments.
package play

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/models"
)

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNotOffense       = errors.New("player is not on offense")
	ErrNotDefense       = errors.New("player is not on defense")
	ErrNotSpecialTeams  = errors.New("play is not a special teams play")
	ErrRouteTooShort    = errors.New("custom route needs at least two points")
	ErrUnknownCoverage  = errors.New("unknown coverage")
	ErrUnknownReference = errors.New("unknown reference side")
)

// Model is not safe for concurrent use. One editing session owns it.
type Model struct {
	catalog *catalog.Catalog

	players          []models.Player
	routes           []models.Route
	referenceOffense []models.Player
	referenceDefense []models.Player

	formation  string
	odk        string
	playType   string
	coverage   string
	attributes map[string]string
}

// New returns an empty model backed by c.
func New(c *catalog.Catalog) *Model {
	return &Model{catalog: c, attributes: make(map[string]string)}
}

// Load hydrates a model from a persisted snapshot. Derived routes are
// regenerated; custom routes are kept for players still assigned to them.
func Load(c *catalog.Catalog, s models.Snapshot) *Model {
	s = s.Clone()
	m := New(c)
	m.formation = s.Formation
	m.odk = s.ODK
	m.playType = s.PlayType
	m.coverage = s.Coverage
	for k, v := range s.Attributes {
		m.attributes[k] = v
	}
	for _, p := range s.Players {
		if p.IsDummy {
			continue
		}
		m.players = append(m.players, p)
	}
	for _, r := range s.Routes {
		if r.Custom {
			m.routes = append(m.routes, r)
		}
	}
	m.RecomputeRoutes()
	return m
}

// LoadFormation replaces every player with a fresh layout of the named
// formation and discards all routes, custom ones included. The current
// coverage is reapplied to a defensive formation.
func (m *Model) LoadFormation(odk, name string) error {
	f, err := m.catalog.GetFormation(odk, name)
	if err != nil {
		return fmt.Errorf("loading formation: %w", err)
	}

	points := catalog.Layout(f, models.FieldCenterX, models.LineOfScrimmY)
	players := make([]models.Player, len(f.Slots))
	for i, slot := range f.Slots {
		players[i] = models.Player{
			ID:         uuid.NewString(),
			Position:   slot.Position,
			Label:      slot.Label,
			Point:      points[i],
			Side:       f.Side,
			MotionType: models.MotionNone,
		}
		if f.Side == models.SideOffense && catalog.IsLineman(slot.Position) {
			players[i].BlockType = models.DefaultBlock
		}
	}

	m.players = players
	m.routes = nil
	m.formation = f.Name
	m.odk = odk
	if !slices.Contains(catalog.PlayTypes(odk), m.playType) {
		m.playType = ""
	}

	if m.coverage != "" && f.Side == models.SideDefense {
		if err := m.ApplyCoverage(m.coverage); err != nil {
			return err
		}
	}
	m.RecomputeRoutes()
	return nil
}

func (m *Model) SetPlayType(playType string) {
	m.playType = playType
}

func (m *Model) SetAttribute(key, value string) {
	if value == "" {
		delete(m.attributes, key)
		return
	}
	m.attributes[key] = value
}

func (m *Model) Formation() string { return m.formation }
func (m *Model) ODK() string       { return m.odk }
func (m *Model) PlayType() string  { return m.playType }
func (m *Model) Coverage() string  { return m.coverage }

func (m *Model) Attribute(key string) string {
	return m.attributes[key]
}

// Players returns copies of the on-field players.
func (m *Model) Players() []models.Player {
	return clonePlayers(m.players)
}

func (m *Model) Player(id string) (models.Player, bool) {
	for _, p := range m.players {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Player{}, false
}

// Routes returns copies of all routes, derived first.
func (m *Model) Routes() []models.Route {
	out := make([]models.Route, len(m.routes))
	for i, r := range m.routes {
		out[i] = r.Clone()
	}
	return out
}

// Route returns the route owned by a player, if any.
func (m *Model) Route(playerID string) (models.Route, bool) {
	for _, r := range m.routes {
		if r.PlayerID == playerID {
			return r.Clone(), true
		}
	}
	return models.Route{}, false
}

// Serialize produces the snapshot handed to persistence. Reference players
// are never included.
func (m *Model) Serialize() models.Snapshot {
	s := models.Snapshot{
		Players:   make([]models.Player, 0, len(m.players)),
		Routes:    make([]models.Route, 0, len(m.routes)),
		Formation: m.formation,
		ODK:       m.odk,
		PlayType:  m.playType,
		Coverage:  m.coverage,
	}
	for _, p := range m.players {
		if !p.IsDummy {
			s.Players = append(s.Players, p.Clone())
		}
	}
	for _, r := range m.routes {
		s.Routes = append(s.Routes, r.Clone())
	}
	if len(m.attributes) > 0 {
		s.Attributes = make(map[string]string, len(m.attributes))
		for k, v := range m.attributes {
			s.Attributes[k] = v
		}
	}
	return s
}

// Clone returns an independent copy of the model sharing only the catalog.
func (m *Model) Clone() *Model {
	c := Load(m.catalog, m.Serialize())
	c.referenceOffense = clonePlayers(m.referenceOffense)
	c.referenceDefense = clonePlayers(m.referenceDefense)
	return c
}

func (m *Model) find(id string) (*models.Player, error) {
	for i := range m.players {
		if m.players[i].ID == id {
			return &m.players[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
}

func (m *Model) findOffense(id string) (*models.Player, error) {
	p, err := m.find(id)
	if err != nil {
		return nil, err
	}
	if p.Side != models.SideOffense {
		return nil, fmt.Errorf("%w: %s", ErrNotOffense, id)
	}
	return p, nil
}

func (m *Model) findDefense(id string) (*models.Player, error) {
	p, err := m.find(id)
	if err != nil {
		return nil, err
	}
	if p.Side != models.SideDefense {
		return nil, fmt.Errorf("%w: %s", ErrNotDefense, id)
	}
	return p, nil
}

func clonePlayers(players []models.Player) []models.Player {
	if players == nil {
		return nil
	}
	out := make([]models.Player, len(players))
	for i, p := range players {
		out[i] = p.Clone()
	}
	return out
}
