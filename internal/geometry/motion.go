package geometry

import "github.com/omarshaarawi/playbook/internal/models"

type motionShape struct {
	lateral float64
	curved  bool
	// control point offsets, lateral toward the motion direction and depth
	// toward the offense's own backfield
	ctrlLateral float64
	ctrlDepth   float64
}

// offLineDrop is how far a motion man who starts on the line settles back.
const offLineDrop = 15.0

var motionShapes = map[string]motionShape{
	models.MotionJet:    {lateral: 140},
	models.MotionOrbit:  {lateral: 120, curved: true, ctrlLateral: 60, ctrlDepth: 40},
	models.MotionAcross: {lateral: 200},
	models.MotionReturn: {lateral: 20, curved: true, ctrlLateral: 80, ctrlDepth: 30},
	models.MotionShift:  {lateral: 40},
}

// MotionTypes lists the selectable motion types, None first.
func MotionTypes() []string {
	return []string{
		models.MotionNone,
		models.MotionJet,
		models.MotionOrbit,
		models.MotionAcross,
		models.MotionReturn,
		models.MotionShift,
	}
}

// MotionEndpoint computes where a pre-snap motion ends and, for curved types,
// the quadratic control point. None and unknown types return start and nil.
func MotionEndpoint(start models.Point, motionType, direction string, centerX float64, onLOS bool) (models.Point, *models.Point) {
	shape, ok := motionShapes[motionType]
	if !ok {
		return start, nil
	}

	sign := towardCenter(start.X, centerX)
	if direction == models.DirectionOut {
		sign = -sign
	}

	end := models.Point{X: clampX(start.X + sign*shape.lateral), Y: start.Y}
	if onLOS {
		end.Y += offLineDrop
	}
	if !shape.curved {
		return end, nil
	}
	ctrl := models.Point{
		X: clampX(start.X + sign*shape.ctrlLateral),
		Y: start.Y + shape.ctrlDepth,
	}
	return end, &ctrl
}
