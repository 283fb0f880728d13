package geometry

import (
	"math"

	"github.com/omarshaarawi/playbook/internal/models"
)

const (
	ZoneDeepThird       = "Deep Third"
	ZoneDeepThirdMiddle = "Deep Middle Third"
	ZoneDeepHalf        = "Deep Half"
	ZoneDeepQuarter     = "Deep Quarter"
	ZoneDeepMiddle      = "Deep Middle"
	ZoneCurlFlat        = "Curl/Flat"
	ZoneHook            = "Hook"
	ZoneFlat            = "Flat"
	ZoneMiddleHole      = "Middle Hole"
)

// ZoneLandmark is the spot a defender drops to for a coverage role. Outside
// thirds, halves and quarters are taken on the defender's own side of the
// field. Man and unknown roles stay at start.
func ZoneLandmark(role string, start models.Point, centerX, losY float64) models.Point {
	third := models.FieldWidth / 3
	outward := -towardCenter(start.X, centerX)

	switch role {
	case ZoneDeepThird:
		if IsLeftOfCenter(start, centerX) {
			return models.Point{X: third / 2, Y: losY - 150}
		}
		return models.Point{X: models.FieldWidth - third/2, Y: losY - 150}
	case ZoneDeepThirdMiddle:
		return models.Point{X: centerX, Y: losY - 160}
	case ZoneDeepHalf:
		if IsLeftOfCenter(start, centerX) {
			return models.Point{X: models.FieldWidth / 4, Y: losY - 150}
		}
		return models.Point{X: models.FieldWidth * 3 / 4, Y: losY - 150}
	case ZoneDeepQuarter:
		quarter := models.FieldWidth / 4
		lane := math.Max(0, math.Min(3, math.Floor(start.X/quarter)))
		return models.Point{X: quarter*lane + quarter/2, Y: losY - 140}
	case ZoneDeepMiddle:
		return models.Point{X: centerX, Y: losY - 160}
	case ZoneCurlFlat:
		return models.Point{X: clampX(start.X + outward*60), Y: losY - 35}
	case ZoneHook:
		return models.Point{X: start.X - outward*20, Y: losY - 60}
	case ZoneFlat:
		return models.Point{X: clampX(start.X + outward*100), Y: losY - 15}
	case ZoneMiddleHole:
		return models.Point{X: centerX, Y: losY - 110}
	}
	return start
}

// CoveragePath is the drop from start to the role's landmark, or just start
// for man and unknown roles.
func CoveragePath(role string, start models.Point, centerX, losY float64) []models.Point {
	end := ZoneLandmark(role, start, centerX, losY)
	if end == start {
		return []models.Point{start}
	}
	return []models.Point{start, end}
}
