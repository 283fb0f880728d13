package geometry

import "github.com/omarshaarawi/playbook/internal/models"

const (
	BlockRun    = "Run Block"
	BlockPass   = "Pass Block"
	BlockPull   = "Pull"
	BlockCombo  = "Combo"
	BlockDown   = "Down Block"
	BlockReach  = "Reach Block"
	BlockDouble = "Double Team"

	blockArrowLength = 30.0
	pullArrowLength  = 40.0
)

// BlockTypes lists the block techniques offered to blockers.
func BlockTypes() []string {
	return []string{BlockRun, BlockPass, BlockPull, BlockCombo, BlockDown, BlockReach, BlockDouble}
}

// BlockArrowEndpoint returns the tip of the block arrow drawn from start.
// Angles are screen-space degrees with y growing toward the offense's own
// backfield, so -45 points upfield and to the right.
func BlockArrowEndpoint(start models.Point, blockType string, centerX float64, override *models.Point) models.Point {
	if override != nil {
		return *override
	}

	length := blockArrowLength
	angle := -45.0
	left := IsLeftOfCenter(start, centerX)

	switch blockType {
	case BlockPass:
		angle = 90
	case BlockPull:
		length = pullArrowLength
		angle = 180
		if left {
			angle = 0
		}
	case BlockDown:
		angle = -135
		if left {
			angle = -45
		}
	case BlockReach:
		angle = -45
		if left {
			angle = -135
		}
	}

	dx, dy := rotate(length, angle)
	return models.Point{X: start.X + dx, Y: start.Y + dy}
}
