// Package geometry turns named football behaviors into concrete paths in
// field space. Every function here is pure; unknown names degrade to a
// single-point or identity result instead of failing.
package geometry

import (
	"math"

	"github.com/omarshaarawi/playbook/internal/models"
)

const epsilon = 1e-9

// IsLeftOfCenter reports whether p sits on the left half of the field.
func IsLeftOfCenter(p models.Point, centerX float64) bool {
	return p.X < centerX
}

// towardCenter returns +1 when moving toward centerX means increasing x.
func towardCenter(x, centerX float64) float64 {
	if x > centerX {
		return -1
	}
	return 1
}

func clampX(x float64) float64 {
	return math.Max(0, math.Min(models.FieldWidth, x))
}

func Distance(a, b models.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PointSegmentDistance is the shortest distance from p to the segment a-b.
func PointSegmentDistance(p, a, b models.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < epsilon {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Distance(p, models.Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// QuadraticPoint evaluates the quadratic Bezier a-ctrl-b at t in [0,1].
func QuadraticPoint(a, ctrl, b models.Point, t float64) models.Point {
	u := 1 - t
	return models.Point{
		X: u*u*a.X + 2*u*t*ctrl.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*ctrl.Y + t*t*b.Y,
	}
}

// Flatten converts a path into a polyline. Curved paths are sampled into
// segments pieces; straight paths are returned as a copy.
func Flatten(p models.Path, segments int) []models.Point {
	if p.Control == nil || len(p.Points) < 2 {
		return append([]models.Point(nil), p.Points...)
	}
	if segments < 1 {
		segments = 1
	}
	a := p.Points[0]
	b := p.Points[len(p.Points)-1]
	out := make([]models.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		out = append(out, QuadraticPoint(a, *p.Control, b, float64(i)/float64(segments)))
	}
	return out
}

func rotate(length, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	return length * math.Cos(rad), length * math.Sin(rad)
}

// OnLineDepth is how far behind the line of scrimmage a player may stand and
// still count as on the line.
const OnLineDepth = 20.0

// OnLine reports whether p is within depth of the line of scrimmage.
func OnLine(p models.Point, losY, depth float64) bool {
	return math.Abs(p.Y-losY) <= depth
}
