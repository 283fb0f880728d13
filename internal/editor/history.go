package editor

import "github.com/omarshaarawi/playbook/internal/play"

// DefaultHistoryLimit bounds how many actions can be undone.
const DefaultHistoryLimit = 50

type ActionType string

const (
	ActionAssignment  ActionType = "assignment"
	ActionBlock       ActionType = "block"
	ActionMotion      ActionType = "motion"
	ActionCustomRoute ActionType = "custom-route"
	ActionBlitz       ActionType = "blitz"
	ActionCoverage    ActionType = "coverage"
	ActionReset       ActionType = "reset"
)

// Action records one discrete edit to a single player.
type Action struct {
	Type     ActionType
	PlayerID string
	Previous play.PlayerState
	Next     play.PlayerState
}

type History struct {
	limit     int
	undoStack []Action
	redoStack []Action
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Push records a new action, forgetting the oldest past the limit and
// clearing anything that could have been redone.
func (h *History) Push(a Action) {
	h.undoStack = append(h.undoStack, a)
	if len(h.undoStack) > h.limit {
		h.undoStack = append([]Action(nil), h.undoStack[len(h.undoStack)-h.limit:]...)
	}
	h.redoStack = nil
}

// PeekUndo returns the action Undo would revert without moving it.
func (h *History) PeekUndo() (Action, bool) {
	if len(h.undoStack) == 0 {
		return Action{}, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

func (h *History) PeekRedo() (Action, bool) {
	if len(h.redoStack) == 0 {
		return Action{}, false
	}
	return h.redoStack[len(h.redoStack)-1], true
}

func (h *History) Undo() (Action, bool) {
	a, ok := h.PeekUndo()
	if !ok {
		return Action{}, false
	}
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, a)
	return a, true
}

func (h *History) Redo() (Action, bool) {
	a, ok := h.PeekRedo()
	if !ok {
		return Action{}, false
	}
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, a)
	return a, true
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}
