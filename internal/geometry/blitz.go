package geometry

import (
	"math"

	"github.com/omarshaarawi/playbook/internal/models"
)

const (
	// BlitzClearance is how close another defender may sit to a straight
	// blitz lane before the lane is bent around him.
	BlitzClearance = 20.0
	blitzBulge     = 30.0
)

// BlitzPath runs a rusher from start to target. The lane is straight unless it
// passes within BlitzClearance of another defender, in which case it bends
// through a quadratic control point bulging away from the field centre.
func BlitzPath(start, target models.Point, others []models.Point, centerX float64) models.Path {
	path := models.Path{Points: []models.Point{start, target}}

	blocked := false
	for _, o := range others {
		if PointSegmentDistance(o, start, target) < BlitzClearance {
			blocked = true
			break
		}
	}
	if !blocked {
		return path
	}

	dx := target.X - start.X
	dy := target.Y - start.Y
	length := math.Hypot(dx, dy)
	if length < epsilon {
		return path
	}

	mid := models.Point{X: (start.X + target.X) / 2, Y: (start.Y + target.Y) / 2}
	nx, ny := -dy/length, dx/length
	plus := models.Point{X: mid.X + nx*blitzBulge, Y: mid.Y + ny*blitzBulge}
	minus := models.Point{X: mid.X - nx*blitzBulge, Y: mid.Y - ny*blitzBulge}

	ctrl := plus
	switch {
	case math.Abs(nx) < epsilon:
		// horizontal lane: bend away from the line of scrimmage
		if minus.Y < plus.Y {
			ctrl = minus
		}
	case math.Abs(minus.X-centerX) > math.Abs(plus.X-centerX):
		ctrl = minus
	}
	path.Control = &ctrl
	return path
}
