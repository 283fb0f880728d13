package play

import (
	"fmt"

	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/models"
)

// SetReference overlays a ghost formation for alignment study. An offensive
// formation fills the offense overlay and a defensive one the defense
// overlay; special teams units go by the side they render as. Ghost players
// are never validated or saved.
func (m *Model) SetReference(odk, name string) error {
	f, err := m.catalog.GetFormation(odk, name)
	if err != nil {
		return fmt.Errorf("loading reference: %w", err)
	}

	points := catalog.Layout(f, models.FieldCenterX, models.LineOfScrimmY)
	ghosts := make([]models.Player, len(f.Slots))
	for i, slot := range f.Slots {
		ghosts[i] = models.Player{
			ID:         fmt.Sprintf("ref-%s-%d", f.Side, i),
			Position:   slot.Position,
			Label:      slot.Label,
			Point:      points[i],
			Side:       f.Side,
			MotionType: models.MotionNone,
			IsDummy:    true,
		}
	}

	if f.Side == models.SideOffense {
		m.referenceOffense = ghosts
	} else {
		m.referenceDefense = ghosts
	}
	return nil
}

// ClearReference removes the overlay for a side.
func (m *Model) ClearReference(side string) error {
	switch side {
	case models.SideOffense:
		m.referenceOffense = nil
	case models.SideDefense:
		m.referenceDefense = nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownReference, side)
	}
	return nil
}

// References returns copies of the ghost players for a side.
func (m *Model) References(side string) []models.Player {
	if side == models.SideOffense {
		return clonePlayers(m.referenceOffense)
	}
	if side == models.SideDefense {
		return clonePlayers(m.referenceDefense)
	}
	return nil
}
