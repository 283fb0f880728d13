// Package editor turns pointer and keyboard input into edits on a play model.
package editor

import (
	"errors"
	"fmt"

	"github.com/omarshaarawi/playbook/internal/geometry"
	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/omarshaarawi/playbook/internal/play"
)

// ClickThreshold is how far the pointer may travel between down and up and
// still count as a click rather than a drag.
const ClickThreshold = 5.0

var (
	ErrBusy       = errors.New("editor is busy")
	ErrNotDrawing = errors.New("not drawing a route")
)

type State int

const (
	Idle State = iota
	DraggingPlayer
	DraggingMotionEndpoint
	DraggingMotionControlPoint
	DraggingBlockDirection
	DraggingZoneEndpoint
	DraggingSpecialTeamsPath
	Drawing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DraggingPlayer:
		return "dragging-player"
	case DraggingMotionEndpoint:
		return "dragging-motion-endpoint"
	case DraggingMotionControlPoint:
		return "dragging-motion-control-point"
	case DraggingBlockDirection:
		return "dragging-block-direction"
	case DraggingZoneEndpoint:
		return "dragging-zone-endpoint"
	case DraggingSpecialTeamsPath:
		return "dragging-special-teams-path"
	case Drawing:
		return "drawing"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Handle is a draggable part of the diagram. Kind is the drag state grabbing
// it enters.
type Handle struct {
	Kind     State
	PlayerID string
}

// Controller is the only thing that mutates the model in response to input.
// Drags write straight to the model on every move; only discrete edits go
// into the undo history.
type Controller struct {
	model   *play.Model
	history *History
	changed func()

	state    State
	playerID string

	downAt models.Point
	moved  bool
	origin play.PlayerState

	points  []models.Point
	restore play.PlayerState
}

func NewController(model *play.Model, history *History) *Controller {
	if history == nil {
		history = NewHistory(DefaultHistoryLimit)
	}
	return &Controller{model: model, history: history}
}

// OnChange registers a callback run after every committed change to the
// model.
func (c *Controller) OnChange(fn func()) {
	c.changed = fn
}

func (c *Controller) notify() {
	if c.changed != nil {
		c.changed()
	}
}

func (c *Controller) Model() *play.Model { return c.model }
func (c *Controller) State() State       { return c.state }

// ActivePlayer is the player being dragged or drawn for.
func (c *Controller) ActivePlayer() string { return c.playerID }

// DrawingPoints returns the route being drawn.
func (c *Controller) DrawingPoints() []models.Point {
	return append([]models.Point(nil), c.points...)
}

// PointerDown grabs a handle. It is refused while drawing or already
// dragging.
func (c *Controller) PointerDown(h Handle, pt models.Point) error {
	if c.state != Idle {
		return ErrBusy
	}
	if h.Kind == Idle || h.Kind == Drawing {
		return fmt.Errorf("cannot drag a %s handle", h.Kind)
	}
	origin, err := c.model.PlayerState(h.PlayerID)
	if err != nil {
		return err
	}
	c.state = h.Kind
	c.playerID = h.PlayerID
	c.downAt = pt
	c.moved = false
	c.origin = origin
	return nil
}

// PointerMove writes the dragged coordinate onto the player. A player only
// starts moving once the pointer leaves the click threshold.
func (c *Controller) PointerMove(pt models.Point) error {
	switch c.state {
	case Idle, Drawing:
		return nil
	case DraggingPlayer:
		if !c.moved && geometry.Distance(c.downAt, pt) < ClickThreshold {
			return nil
		}
	}
	c.moved = true
	return c.apply(pt)
}

func (c *Controller) apply(pt models.Point) error {
	id := c.playerID
	switch c.state {
	case DraggingPlayer:
		return c.model.MovePlayer(id, pt)
	case DraggingMotionEndpoint:
		return c.model.SetMotionEndpoint(id, pt)
	case DraggingMotionControlPoint:
		return c.model.SetMotionControl(id, pt)
	case DraggingBlockDirection:
		return c.model.SetBlockDirection(id, &pt)
	case DraggingZoneEndpoint:
		return c.model.SetZoneEndpoint(id, &pt)
	case DraggingSpecialTeamsPath:
		return c.model.SetLaneEndpoint(id, pt)
	}
	return nil
}

// PointerUp ends a drag. Releasing a player that never left the click
// threshold is a click: if the player owns a hand-drawn route it is reopened
// for editing.
func (c *Controller) PointerUp(pt models.Point) error {
	switch c.state {
	case Idle, Drawing:
		return nil
	case DraggingPlayer:
		if !c.moved && geometry.Distance(c.downAt, pt) < ClickThreshold {
			id := c.playerID
			c.reset()
			if _, ok := c.model.CustomRoute(id); ok {
				return c.StartDrawing(id)
			}
			return nil
		}
	}

	err := c.apply(pt)
	c.reset()
	if err != nil {
		return err
	}
	c.notify()
	return nil
}

// Cancel abandons a drag or a drawing and puts the player back exactly as
// they were before it started.
func (c *Controller) Cancel() error {
	switch c.state {
	case Idle:
		return nil
	}

	origin := c.origin
	if c.state == Drawing {
		origin = c.restore
	}
	c.reset()
	if err := c.model.RestorePlayerState(origin); err != nil {
		return err
	}
	c.notify()
	return nil
}

// Escape is the keyboard form of Cancel.
func (c *Controller) Escape() error {
	return c.Cancel()
}

func (c *Controller) reset() {
	c.state = Idle
	c.playerID = ""
	c.moved = false
	c.points = nil
	c.origin = play.PlayerState{}
	c.restore = play.PlayerState{}
}
