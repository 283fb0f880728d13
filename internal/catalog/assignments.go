package catalog

import (
	"strings"

	"github.com/omarshaarawi/playbook/internal/geometry"
	"github.com/omarshaarawi/playbook/internal/models"
)

const (
	PlayTypeRun        = "Run"
	PlayTypePass       = "Pass"
	PlayTypePlayAction = "Play Action"
	PlayTypeScreen     = "Screen"
	PlayTypeRPO        = "RPO"
	PlayTypeBase       = "Base"
	PlayTypeBlitz      = "Blitz"
	PlayTypeKick       = "Kick"
	PlayTypeReturn     = "Return"
)

const maxHole = 7

var backfieldRoutes = []string{
	geometry.RouteFlat,
	geometry.RouteSwing,
	geometry.RouteScreen,
	geometry.RouteWheel,
	geometry.RouteDrag,
	geometry.RouteSlant,
	geometry.RouteOut,
	geometry.RouteGo,
}

// PlayTypes lists the play types offered for an ODK.
func PlayTypes(odk string) []string {
	switch odk {
	case models.ODKOffense:
		return []string{PlayTypeRun, PlayTypePass, PlayTypePlayAction, PlayTypeScreen, PlayTypeRPO}
	case models.ODKDefense:
		return []string{PlayTypeBase, PlayTypeBlitz}
	case models.ODKSpecialTeam:
		return []string{PlayTypeKick, PlayTypeReturn}
	}
	return nil
}

func runLabels() []string {
	labels := make([]string, 0, maxHole+1)
	for hole := 0; hole <= maxHole; hole++ {
		labels = append(labels, geometry.RunLabel(hole))
	}
	return labels
}

func isRunPlay(playType string) bool {
	return strings.EqualFold(playType, PlayTypeRun)
}

func isPassPlay(playType string) bool {
	return strings.EqualFold(playType, PlayTypePass) || strings.EqualFold(playType, PlayTypeScreen)
}

// LegalAssignments lists the labels a position may be given on a play type.
// Unknown play types get the union of the run and pass options.
func LegalAssignments(position, playType string) []string {
	if IsDefensiveLineman(position) || IsLinebacker(position) || IsDefensiveBack(position) {
		labels := append([]string{}, geometry.Gaps()...)
		if !IsDefensiveLineman(position) {
			labels = append(labels, ZoneNames()...)
		}
		return labels
	}

	run := isRunPlay(playType)
	pass := isPassPlay(playType)
	if !run && !pass {
		run, pass = true, true
	}

	if normalize(position) == "QB" {
		if run {
			return runLabels()
		}
		return nil
	}

	var labels []string
	switch PositionGroup(position) {
	case GroupLinemen:
		return []string{models.BlockLabel}
	case GroupBacks:
		labels = append(labels, models.BlockLabel)
		if run {
			labels = append(labels, runLabels()...)
		}
		if pass {
			labels = append(labels, backfieldRoutes...)
			labels = append(labels, models.CustomRoute)
		}
	case GroupReceivers:
		labels = append(labels, models.BlockLabel)
		if pass {
			labels = append(labels, geometry.RouteNames()...)
		} else {
			labels = append(labels, geometry.RouteGo)
		}
		labels = append(labels, models.CustomRoute)
	}
	return labels
}
