package editor

import "github.com/omarshaarawi/playbook/internal/models"

// record runs one discrete edit on a player and pushes it onto the undo
// history.
func (c *Controller) record(t ActionType, playerID string, edit func() error) error {
	if c.state != Idle {
		return ErrBusy
	}
	before, err := c.model.PlayerState(playerID)
	if err != nil {
		return err
	}
	if err := edit(); err != nil {
		return err
	}
	after, err := c.model.PlayerState(playerID)
	if err != nil {
		return err
	}
	c.history.Push(Action{Type: t, PlayerID: playerID, Previous: before, Next: after})
	c.notify()
	return nil
}

// SetAssignment assigns a label. Choosing "Custom Route" for a player with
// no hand-drawn route starts drawing one; the assignment is only recorded
// once the drawing is finished, and cancelling restores the old one.
func (c *Controller) SetAssignment(playerID, label string) error {
	if label == models.CustomRoute {
		if _, ok := c.model.CustomRoute(playerID); !ok {
			if c.state != Idle {
				return ErrBusy
			}
			before, err := c.model.PlayerState(playerID)
			if err != nil {
				return err
			}
			if err := c.model.SetAssignment(playerID, label); err != nil {
				return err
			}
			return c.startDrawing(before)
		}
	}
	return c.record(ActionAssignment, playerID, func() error {
		return c.model.SetAssignment(playerID, label)
	})
}

func (c *Controller) SetBlock(playerID, blockType string) error {
	return c.record(ActionBlock, playerID, func() error {
		return c.model.SetBlock(playerID, blockType)
	})
}

func (c *Controller) SetMotion(playerID, motionType, direction string) error {
	return c.record(ActionMotion, playerID, func() error {
		return c.model.SetMotion(playerID, motionType, direction)
	})
}

func (c *Controller) ClearCustomRoute(playerID string) error {
	return c.record(ActionCustomRoute, playerID, func() error {
		return c.model.ClearCustomRoute(playerID)
	})
}

func (c *Controller) SetBlitz(playerID, gap string) error {
	return c.record(ActionBlitz, playerID, func() error {
		return c.model.SetBlitz(playerID, gap)
	})
}

func (c *Controller) SetCoverageRole(playerID, role string) error {
	return c.record(ActionCoverage, playerID, func() error {
		return c.model.SetCoverageRole(playerID, role)
	})
}

func (c *Controller) ResetToRole(playerID string) error {
	return c.record(ActionReset, playerID, func() error {
		return c.model.ResetToRole(playerID)
	})
}

func (c *Controller) ResetToTechnique(playerID string) error {
	return c.record(ActionReset, playerID, func() error {
		return c.model.ResetToTechnique(playerID)
	})
}

// TogglePrimary touches every offensive player, so it is not undoable.
func (c *Controller) TogglePrimary(playerID string) error {
	if c.state != Idle {
		return ErrBusy
	}
	if err := c.model.TogglePrimary(playerID); err != nil {
		return err
	}
	c.notify()
	return nil
}

// ApplyCoverage rewrites every defender's role and is not undoable.
func (c *Controller) ApplyCoverage(name string) error {
	if c.state != Idle {
		return ErrBusy
	}
	if err := c.model.ApplyCoverage(name); err != nil {
		return err
	}
	c.notify()
	return nil
}

// LoadFormation reseeds the model. Every player is new, so the history is
// cleared.
func (c *Controller) LoadFormation(odk, name string) error {
	if c.state != Idle {
		return ErrBusy
	}
	if err := c.model.LoadFormation(odk, name); err != nil {
		return err
	}
	c.history.Clear()
	c.notify()
	return nil
}

// Undo reverts the last recorded action. It reports false when there is
// nothing to undo. Only the fields the action changed are reverted; later
// drags and primary toggles stay. A failed revert leaves the history as it
// was.
func (c *Controller) Undo() (bool, error) {
	if c.state != Idle {
		return false, ErrBusy
	}
	a, ok := c.history.PeekUndo()
	if !ok {
		return false, nil
	}
	if err := c.model.ApplyPlayerChange(a.Next, a.Previous); err != nil {
		return false, err
	}
	c.history.Undo()
	c.notify()
	return true, nil
}

func (c *Controller) Redo() (bool, error) {
	if c.state != Idle {
		return false, ErrBusy
	}
	a, ok := c.history.PeekRedo()
	if !ok {
		return false, nil
	}
	if err := c.model.ApplyPlayerChange(a.Previous, a.Next); err != nil {
		return false, err
	}
	c.history.Redo()
	c.notify()
	return true, nil
}

func (c *Controller) CanUndo() bool { return c.history.CanUndo() }
func (c *Controller) CanRedo() bool { return c.history.CanRedo() }
