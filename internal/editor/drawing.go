package editor

import (
	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/omarshaarawi/playbook/internal/play"
)

// StartDrawing enters freehand mode for a player. A player who already owns
// a hand-drawn route picks up where it left off; otherwise drawing starts
// from where the player stands at the snap.
func (c *Controller) StartDrawing(playerID string) error {
	before, err := c.model.PlayerState(playerID)
	if err != nil {
		return err
	}
	return c.startDrawing(before)
}

func (c *Controller) startDrawing(restore play.PlayerState) error {
	if c.state != Idle {
		return ErrBusy
	}
	id := restore.Player.ID
	p, ok := c.model.Player(id)
	if !ok {
		return play.ErrPlayerNotFound
	}
	if p.Side != models.SideOffense {
		return play.ErrNotOffense
	}

	points := []models.Point{p.SnapPoint()}
	if r, ok := c.model.CustomRoute(id); ok {
		points = r.Points
	}
	c.state = Drawing
	c.playerID = id
	c.points = points
	c.restore = restore
	return nil
}

// Click adds a point to the route being drawn. Outside drawing mode it does
// nothing; selection belongs to the host.
func (c *Controller) Click(pt models.Point) bool {
	if c.state != Drawing {
		return false
	}
	c.points = append(c.points, pt)
	return true
}

// DoubleClick adds a last point and finishes the route.
func (c *Controller) DoubleClick(pt models.Point) error {
	if c.state != Drawing {
		return ErrNotDrawing
	}
	if last := c.points[len(c.points)-1]; last != pt {
		c.points = append(c.points, pt)
	}
	return c.Finish()
}

// Finish commits the drawn route as one undoable action. A route needs at
// least two points; with fewer the controller stays in drawing mode.
func (c *Controller) Finish() error {
	if c.state != Drawing {
		return ErrNotDrawing
	}
	if len(c.points) < 2 {
		return play.ErrRouteTooShort
	}

	id := c.playerID
	restore := c.restore
	points := c.points
	c.reset()

	if err := c.model.SetCustomRoute(id, points); err != nil {
		_ = c.model.RestorePlayerState(restore)
		return err
	}
	next, err := c.model.PlayerState(id)
	if err != nil {
		return err
	}
	c.history.Push(Action{Type: ActionCustomRoute, PlayerID: id, Previous: restore, Next: next})
	c.notify()
	return nil
}
