package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/geometry"
	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/omarshaarawi/playbook/internal/play"
)

func newController(t *testing.T, odk, formation string) *Controller {
	t.Helper()
	m := play.New(catalog.New())
	require.NoError(t, m.LoadFormation(odk, formation))
	return NewController(m, NewHistory(DefaultHistoryLimit))
}

func labelled(t *testing.T, c *Controller, label string) models.Player {
	t.Helper()
	for _, p := range c.Model().Players() {
		if p.Label == label {
			return p
		}
	}
	t.Fatalf("no player labelled %s", label)
	return models.Player{}
}

func TestUndoRedoAssignment(t *testing.T) {
	c := newController(t, models.ODKOffense, "Singleback")
	z := labelled(t, c, "Z")

	require.NoError(t, c.SetAssignment(z.ID, geometry.RouteOut))
	routeBefore, ok := c.Model().Route(z.ID)
	require.True(t, ok)

	require.NoError(t, c.SetAssignment(z.ID, geometry.RouteCorner))
	corner, _ := c.Model().Route(z.ID)
	assert.NotEqual(t, routeBefore, corner)

	undone, err := c.Undo()
	require.NoError(t, err)
	assert.True(t, undone)
	p, _ := c.Model().Player(z.ID)
	assert.Equal(t, geometry.RouteOut, p.Assignment)
	route, _ := c.Model().Route(z.ID)
	assert.Equal(t, routeBefore, route)

	redone, err := c.Redo()
	require.NoError(t, err)
	assert.True(t, redone)
	p, _ = c.Model().Player(z.ID)
	assert.Equal(t, geometry.RouteCorner, p.Assignment)
	route, _ = c.Model().Route(z.ID)
	assert.Equal(t, corner, route)

	// undo all the way back to no assignment
	_, _ = c.Undo()
	_, _ = c.Undo()
	_, ok = c.Model().Route(z.ID)
	assert.False(t, ok)
	undone, err = c.Undo()
	require.NoError(t, err)
	assert.False(t, undone)
}

func TestNewActionClearsRedo(t *testing.T) {
	c := newController(t, models.ODKOffense, "Singleback")
	z := labelled(t, c, "Z").ID

	require.NoError(t, c.SetAssignment(z, geometry.RouteGo))
	_, err := c.Undo()
	require.NoError(t, err)
	assert.True(t, c.CanRedo())

	require.NoError(t, c.SetMotion(z, models.MotionJet, models.DirectionIn))
	assert.False(t, c.CanRedo())
	redone, err := c.Redo()
	require.NoError(t, err)
	assert.False(t, redone)
}

func TestHistoryIsBounded(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(Action{Type: ActionAssignment, PlayerID: string(rune('a' + i))})
	}

	var undone []string
	for {
		a, ok := h.Undo()
		if !ok {
			break
		}
		undone = append(undone, a.PlayerID)
	}
	assert.Equal(t, []string{"e", "d", "c"}, undone)

	a, ok := h.Redo()
	require.True(t, ok)
	assert.Equal(t, "c", a.PlayerID)
}

func TestDragPlayer(t *testing.T) {
	c := newController(t, models.ODKOffense, "Shotgun")
	x := labelled(t, c, "X")
	changes := 0
	c.OnChange(func() { changes++ })

	require.NoError(t, c.PointerDown(Handle{Kind: DraggingPlayer, PlayerID: x.ID}, x.Point))
	assert.Equal(t, DraggingPlayer, c.State())
	assert.ErrorIs(t, c.PointerDown(Handle{Kind: DraggingPlayer, PlayerID: x.ID}, x.Point), ErrBusy)

	jitter := models.Point{X: x.Point.X + 2, Y: x.Point.Y}
	require.NoError(t, c.PointerMove(jitter))
	p, _ := c.Model().Player(x.ID)
	assert.Equal(t, x.Point, p.Point, "movement under the threshold does not drag")

	step := models.Point{X: x.Point.X + 30, Y: x.Point.Y + 10}
	require.NoError(t, c.PointerMove(step))
	p, _ = c.Model().Player(x.ID)
	assert.Equal(t, step, p.Point, "every move lands on the model")

	end := models.Point{X: x.Point.X + 40, Y: x.Point.Y + 20}
	require.NoError(t, c.PointerUp(end))
	assert.Equal(t, Idle, c.State())
	p, _ = c.Model().Player(x.ID)
	assert.Equal(t, end, p.Point)
	assert.Equal(t, 1, changes)
	assert.False(t, c.CanUndo(), "drags are not undoable")
}

func TestCancelDragRestoresPlayer(t *testing.T) {
	c := newController(t, models.ODKOffense, "Shotgun")
	x := labelled(t, c, "X")
	require.NoError(t, c.SetAssignment(x.ID, geometry.RouteSlant))
	route, _ := c.Model().Route(x.ID)

	require.NoError(t, c.PointerDown(Handle{Kind: DraggingPlayer, PlayerID: x.ID}, x.Point))
	require.NoError(t, c.PointerMove(models.Point{X: 300, Y: 300}))
	require.NoError(t, c.Escape())

	assert.Equal(t, Idle, c.State())
	p, _ := c.Model().Player(x.ID)
	assert.Equal(t, x.Point, p.Point)
	again, _ := c.Model().Route(x.ID)
	assert.Equal(t, route, again)
}

func TestDragHandles(t *testing.T) {
	c := newController(t, models.ODKOffense, "Shotgun")
	h := labelled(t, c, "H")
	require.NoError(t, c.SetMotion(h.ID, models.MotionOrbit, models.DirectionIn))

	end := models.Point{X: 330, Y: 240}
	require.NoError(t, c.PointerDown(Handle{Kind: DraggingMotionEndpoint, PlayerID: h.ID}, end))
	require.NoError(t, c.PointerUp(end))
	ctrl := models.Point{X: 250, Y: 280}
	require.NoError(t, c.PointerDown(Handle{Kind: DraggingMotionControlPoint, PlayerID: h.ID}, ctrl))
	require.NoError(t, c.PointerUp(ctrl))

	p, _ := c.Model().Player(h.ID)
	assert.Equal(t, end, *p.MotionEndpoint)
	assert.Equal(t, ctrl, *p.MotionControl)
	assert.True(t, p.MotionManual)

	var lg models.Player
	for _, pl := range c.Model().Players() {
		if pl.Position == "LG" {
			lg = pl
		}
	}
	tip := models.Point{X: lg.Point.X - 10, Y: lg.Point.Y - 30}
	require.NoError(t, c.PointerDown(Handle{Kind: DraggingBlockDirection, PlayerID: lg.ID}, tip))
	require.NoError(t, c.PointerUp(tip))
	arrow, ok := c.Model().BlockArrow(lg.ID)
	require.True(t, ok)
	assert.Equal(t, tip, arrow)

	assert.Error(t, c.PointerDown(Handle{Kind: Drawing, PlayerID: lg.ID}, tip))
	assert.ErrorIs(t, c.PointerDown(Handle{Kind: DraggingPlayer, PlayerID: "missing"}, tip), play.ErrPlayerNotFound)
}

func TestDragZoneEndpoint(t *testing.T) {
	c := newController(t, models.ODKDefense, "4-3 Base")
	require.NoError(t, c.ApplyCoverage("Cover 2"))

	var cb models.Player
	for _, p := range c.Model().Players() {
		if p.Position == "CB" {
			cb = p
			break
		}
	}
	spot := models.Point{X: 60, Y: 150}
	require.NoError(t, c.PointerDown(Handle{Kind: DraggingZoneEndpoint, PlayerID: cb.ID}, cb.Point))
	require.NoError(t, c.PointerMove(spot))
	require.NoError(t, c.PointerUp(spot))

	path, err := c.Model().DefenderPath(cb.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Point{cb.Point, spot}, path.Points)
}

func TestFreehandDrawing(t *testing.T) {
	c := newController(t, models.ODKOffense, "Singleback")
	y := labelled(t, c, "Y")
	require.NoError(t, c.SetAssignment(y.ID, geometry.RouteFlat))

	require.NoError(t, c.SetAssignment(y.ID, models.CustomRoute))
	assert.Equal(t, Drawing, c.State())
	assert.Equal(t, []models.Point{y.Point}, c.DrawingPoints())

	assert.ErrorIs(t, c.PointerDown(Handle{Kind: DraggingPlayer, PlayerID: y.ID}, y.Point), ErrBusy)
	assert.ErrorIs(t, c.SetBlock(y.ID, geometry.BlockRun), ErrBusy)
	assert.ErrorIs(t, c.Finish(), play.ErrRouteTooShort)
	assert.Equal(t, Drawing, c.State())

	assert.True(t, c.Click(models.Point{X: 440, Y: 150}))
	require.NoError(t, c.DoubleClick(models.Point{X: 500, Y: 120}))
	assert.Equal(t, Idle, c.State())

	route, ok := c.Model().CustomRoute(y.ID)
	require.True(t, ok)
	assert.Equal(t, []models.Point{y.Point, {X: 440, Y: 150}, {X: 500, Y: 120}}, route.Points)

	undone, err := c.Undo()
	require.NoError(t, err)
	assert.True(t, undone)
	p, _ := c.Model().Player(y.ID)
	assert.Equal(t, geometry.RouteFlat, p.Assignment)
	_, ok = c.Model().CustomRoute(y.ID)
	assert.False(t, ok)

	_, err = c.Redo()
	require.NoError(t, err)
	again, ok := c.Model().CustomRoute(y.ID)
	require.True(t, ok)
	assert.Equal(t, route, again)
}

func TestEscapeWhileDrawingReverts(t *testing.T) {
	c := newController(t, models.ODKOffense, "Singleback")
	y := labelled(t, c, "Y")
	require.NoError(t, c.SetAssignment(y.ID, geometry.RouteSeam))
	seam, _ := c.Model().Route(y.ID)

	require.NoError(t, c.SetAssignment(y.ID, models.CustomRoute))
	c.Click(models.Point{X: 450, Y: 100})
	c.Click(models.Point{X: 480, Y: 60})
	require.NoError(t, c.Escape())

	assert.Equal(t, Idle, c.State())
	assert.Empty(t, c.DrawingPoints())
	p, _ := c.Model().Player(y.ID)
	assert.Equal(t, geometry.RouteSeam, p.Assignment)
	route, _ := c.Model().Route(y.ID)
	assert.Equal(t, seam, route)
	_, ok := c.Model().CustomRoute(y.ID)
	assert.False(t, ok)

	assert.False(t, c.Click(models.Point{X: 1, Y: 1}), "clicks outside drawing mode do nothing")
	assert.ErrorIs(t, c.Finish(), ErrNotDrawing)
}

func TestClickReopensCustomRoute(t *testing.T) {
	c := newController(t, models.ODKOffense, "Singleback")
	y := labelled(t, c, "Y")
	drawn := []models.Point{y.Point, {X: 460, Y: 150}}
	require.NoError(t, c.Model().SetCustomRoute(y.ID, drawn))

	require.NoError(t, c.PointerDown(Handle{Kind: DraggingPlayer, PlayerID: y.ID}, y.Point))
	require.NoError(t, c.PointerMove(models.Point{X: y.Point.X + 3, Y: y.Point.Y}))
	require.NoError(t, c.PointerUp(models.Point{X: y.Point.X + 3, Y: y.Point.Y + 1}))

	assert.Equal(t, Drawing, c.State())
	assert.Equal(t, drawn, c.DrawingPoints())
	p, _ := c.Model().Player(y.ID)
	assert.Equal(t, y.Point, p.Point, "a click does not move the player")

	c.Click(models.Point{X: 500, Y: 100})
	require.NoError(t, c.Finish())
	route, _ := c.Model().CustomRoute(y.ID)
	assert.Len(t, route.Points, 3)

	// a click on a player without a drawn route just selects
	x := labelled(t, c, "X")
	require.NoError(t, c.PointerDown(Handle{Kind: DraggingPlayer, PlayerID: x.ID}, x.Point))
	require.NoError(t, c.PointerUp(x.Point))
	assert.Equal(t, Idle, c.State())
}

func TestLoadFormationClearsHistory(t *testing.T) {
	c := newController(t, models.ODKOffense, "Singleback")
	require.NoError(t, c.SetAssignment(labelled(t, c, "Z").ID, geometry.RouteGo))
	require.True(t, c.CanUndo())

	require.NoError(t, c.LoadFormation(models.ODKOffense, "Empty"))
	assert.False(t, c.CanUndo())
	assert.Empty(t, c.Model().Routes())
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "drawing", Drawing.String())
	assert.Equal(t, "dragging-special-teams-path", DraggingSpecialTeamsPath.String())
}

func TestUndoKeepsLaterDragAndPrimary(t *testing.T) {
	c := newController(t, models.ODKOffense, "Shotgun")
	z := labelled(t, c, "Z")

	require.NoError(t, c.SetAssignment(z.ID, geometry.RouteGo))
	require.NoError(t, c.TogglePrimary(z.ID))

	dragged := models.Point{X: z.Point.X - 60, Y: z.Point.Y}
	require.NoError(t, c.PointerDown(Handle{Kind: DraggingPlayer, PlayerID: z.ID}, z.Point))
	require.NoError(t, c.PointerMove(dragged))
	require.NoError(t, c.PointerUp(dragged))

	undone, err := c.Undo()
	require.NoError(t, err)
	require.True(t, undone)
	p, _ := c.Model().Player(z.ID)
	assert.Equal(t, "", p.Assignment)
	assert.Equal(t, dragged, p.Point, "the drag happened after the assignment")
	assert.True(t, p.IsPrimary, "toggling primary is not part of the assignment")

	redone, err := c.Redo()
	require.NoError(t, err)
	require.True(t, redone)
	p, _ = c.Model().Player(z.ID)
	assert.Equal(t, geometry.RouteGo, p.Assignment)
	assert.Equal(t, dragged, p.Point)
	route, ok := c.Model().Route(z.ID)
	require.True(t, ok)
	assert.Equal(t, dragged, route.Points[0], "the route starts where the player now stands")
}

func TestUndoKeepsDraggedMotionEndpoint(t *testing.T) {
	c := newController(t, models.ODKOffense, "Shotgun")
	h := labelled(t, c, "H")

	require.NoError(t, c.SetMotion(h.ID, models.MotionJet, models.DirectionIn))
	require.NoError(t, c.SetAssignment(h.ID, geometry.RouteSlant))
	p, _ := c.Model().Player(h.ID)
	require.NotNil(t, p.MotionEndpoint)

	end := models.Point{X: p.MotionEndpoint.X + 25, Y: p.MotionEndpoint.Y}
	require.NoError(t, c.PointerDown(Handle{Kind: DraggingMotionEndpoint, PlayerID: h.ID}, *p.MotionEndpoint))
	require.NoError(t, c.PointerUp(end))

	_, err := c.Undo()
	require.NoError(t, err)
	p, _ = c.Model().Player(h.ID)
	assert.Equal(t, "", p.Assignment)
	assert.Equal(t, models.MotionJet, p.MotionType)
	require.NotNil(t, p.MotionEndpoint)
	assert.Equal(t, end, *p.MotionEndpoint)
	assert.True(t, p.MotionManual)
}

func TestFailedUndoKeepsHistory(t *testing.T) {
	m := play.New(catalog.New())
	require.NoError(t, m.LoadFormation(models.ODKOffense, "Shotgun"))
	h := NewHistory(DefaultHistoryLimit)
	ghost := play.PlayerState{Player: models.Player{ID: "ghost"}}
	h.Push(Action{Type: ActionAssignment, PlayerID: "ghost", Previous: ghost, Next: ghost})
	c := NewController(m, h)

	_, err := c.Undo()
	assert.ErrorIs(t, err, play.ErrPlayerNotFound)
	assert.True(t, c.CanUndo())
	assert.False(t, c.CanRedo())
}
