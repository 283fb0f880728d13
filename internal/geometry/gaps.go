package geometry

import (
	"math"
	"sort"
	"strings"

	"github.com/omarshaarawi/playbook/internal/models"
)

const (
	GapStrongA = "Strong A-gap"
	GapStrongB = "Strong B-gap"
	GapStrongC = "Strong C-gap"
	GapWeakA   = "Weak A-gap"
	GapWeakB   = "Weak B-gap"
	GapWeakC   = "Weak C-gap"

	maxHole   = 7
	wideIndex = 3
)

// fallbackGapOffsets are distances from the field centre used when no
// offensive line is available to measure, indexed A, B, C, wide.
var fallbackGapOffsets = [...]float64{15, 45, 75, 135}

// Gaps lists blitz gap names, strong side first.
func Gaps() []string {
	return []string{GapStrongA, GapStrongB, GapStrongC, GapWeakA, GapWeakB, GapWeakC}
}

// parseGap splits "Strong B-gap" into (right side, index 1).
func parseGap(name string) (right bool, index int, ok bool) {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) != 2 {
		return false, 0, false
	}
	switch fields[0] {
	case "strong":
		right = true
	case "weak":
		right = false
	default:
		return false, 0, false
	}
	letter := strings.TrimSuffix(fields[1], "-gap")
	switch letter {
	case "a":
		index = 0
	case "b":
		index = 1
	case "c":
		index = 2
	default:
		return false, 0, false
	}
	return right, index, true
}

// GapPosition locates a named gap on the line of scrimmage. The strong side is
// +x. When line holds at least two ghost linemen the gap midpoints are taken
// from their actual spacing; otherwise a fixed table from centerX is used.
func GapPosition(gap string, centerX, losY float64, line []models.Point) models.Point {
	right, index, ok := parseGap(gap)
	if !ok {
		return models.Point{X: centerX, Y: losY}
	}
	return models.Point{X: gapX(line, centerX, right, index), Y: losY}
}

// HolePosition locates a numbered running hole. Even holes are to the right
// and odd to the left: 0/1 A, 2/3 B, 4/5 C, 6/7 wide.
func HolePosition(hole int, line []models.Point, centerX, losY float64) models.Point {
	if hole < 0 || hole > maxHole {
		return models.Point{X: centerX, Y: losY}
	}
	return models.Point{X: gapX(line, centerX, hole%2 == 0, hole/2), Y: losY}
}

func gapX(line []models.Point, centerX float64, right bool, index int) float64 {
	sign := 1.0
	if !right {
		sign = -1
	}
	if len(line) < 2 {
		return centerX + sign*fallbackGapOffsets[index]
	}

	xs := make([]float64, len(line))
	for i, p := range line {
		xs[i] = p.X
	}
	sort.Float64s(xs)
	spacing := (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)

	center := 0
	for i, x := range xs {
		if math.Abs(x-centerX) < math.Abs(xs[center]-centerX) {
			center = i
		}
	}

	// outward lists lineman x from the snapper toward the sideline.
	var outward []float64
	if right {
		outward = xs[center:]
	} else {
		for i := center; i >= 0; i-- {
			outward = append(outward, xs[i])
		}
	}

	if index == wideIndex {
		return gapX(line, centerX, right, 2) + sign*2*spacing
	}
	if index+1 < len(outward) {
		return (outward[index] + outward[index+1]) / 2
	}
	last := outward[len(outward)-1]
	return last + sign*spacing*(float64(index-len(outward)+1)+0.5)
}
