package catalog

import (
	"sort"
	"strings"

	"github.com/omarshaarawi/playbook/internal/geometry"
	"github.com/omarshaarawi/playbook/internal/models"
)

// Coverage classes group defenders that share a row of a coverage table.
const (
	ClassCorner     = "CB"
	ClassSafety     = "S"
	ClassNickel     = "NB"
	ClassLinebacker = "LB"
)

// CoverageTable lists, per class, the roles handed out in order. Corners,
// nickels and linebackers are ordered left to right, safeties deepest first.
// Defenders beyond the end of a list repeat its last role.
type CoverageTable map[string][]string

var coverages = map[string]CoverageTable{
	"Cover 0": {
		ClassCorner:     {models.RoleMan},
		ClassSafety:     {models.RoleMan},
		ClassNickel:     {models.RoleMan},
		ClassLinebacker: {models.RoleMan},
	},
	"Cover 1": {
		ClassCorner:     {models.RoleMan},
		ClassSafety:     {geometry.ZoneDeepMiddle, models.RoleMan},
		ClassNickel:     {models.RoleMan},
		ClassLinebacker: {models.RoleMan, geometry.ZoneMiddleHole, models.RoleMan},
	},
	"Cover 2": {
		ClassCorner:     {geometry.ZoneFlat},
		ClassSafety:     {geometry.ZoneDeepHalf},
		ClassNickel:     {geometry.ZoneCurlFlat},
		ClassLinebacker: {geometry.ZoneHook},
	},
	"Tampa 2": {
		ClassCorner:     {geometry.ZoneFlat},
		ClassSafety:     {geometry.ZoneDeepHalf},
		ClassNickel:     {geometry.ZoneCurlFlat},
		ClassLinebacker: {geometry.ZoneHook, geometry.ZoneMiddleHole, geometry.ZoneHook},
	},
	"Cover 3": {
		ClassCorner:     {geometry.ZoneDeepThird},
		ClassSafety:     {geometry.ZoneDeepThirdMiddle, geometry.ZoneCurlFlat},
		ClassNickel:     {geometry.ZoneCurlFlat},
		ClassLinebacker: {geometry.ZoneCurlFlat, geometry.ZoneHook, geometry.ZoneHook},
	},
	"Cover 4": {
		ClassCorner:     {geometry.ZoneDeepQuarter},
		ClassSafety:     {geometry.ZoneDeepQuarter},
		ClassNickel:     {geometry.ZoneFlat},
		ClassLinebacker: {geometry.ZoneCurlFlat, geometry.ZoneHook, geometry.ZoneCurlFlat},
	},
}

var roleDescriptions = map[string]string{
	models.RoleMan:               "Man coverage on the assigned receiver",
	geometry.ZoneDeepThird:       "Deep outside third on his side of the field",
	geometry.ZoneDeepThirdMiddle: "Deep middle third, nothing behind him",
	geometry.ZoneDeepHalf:        "Deep half on his side of the field",
	geometry.ZoneDeepQuarter:     "Deep quarter over the nearest receiver",
	geometry.ZoneDeepMiddle:      "Single-high middle of the field",
	geometry.ZoneCurlFlat:        "Wall the curl, then sink to the flat",
	geometry.ZoneHook:            "Hook zone, reroute crossers",
	geometry.ZoneFlat:            "Flat zone, squat and re-route #1",
	geometry.ZoneMiddleHole:      "Run the seam down the middle hole",
}

// CoverageNames lists every coverage, sorted.
func CoverageNames() []string {
	names := make([]string, 0, len(coverages))
	for name := range coverages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Coverage returns the role table for a coverage name, matched
// case-insensitively.
func Coverage(name string) (CoverageTable, bool) {
	for key, table := range coverages {
		if strings.EqualFold(key, strings.TrimSpace(name)) {
			return table, true
		}
	}
	return nil, false
}

// CoverageClass maps a defensive position to its coverage class. Defensive
// linemen and offensive positions return "".
func CoverageClass(position string) string {
	p := normalize(position)
	switch {
	case p == "CB":
		return ClassCorner
	case p == "FS" || p == "SS" || p == "S":
		return ClassSafety
	case IsDefensiveBack(p):
		return ClassNickel
	case IsLinebacker(p):
		return ClassLinebacker
	}
	return ""
}

// Role builds the full role for a zone or man name.
func Role(name string) models.CoverageRole {
	depth := models.DepthUnder
	switch {
	case name == models.RoleMan:
		depth = models.DepthMan
	case strings.HasPrefix(name, "Deep"):
		depth = models.DepthDeep
	}
	return models.CoverageRole{Name: name, Depth: depth, Description: roleDescriptions[name]}
}

// RoleAt returns the role for the i-th defender of a class, repeating the
// last role once the list runs out.
func (t CoverageTable) RoleAt(class string, i int) (models.CoverageRole, bool) {
	roles := t[class]
	if len(roles) == 0 {
		return models.CoverageRole{}, false
	}
	if i >= len(roles) {
		i = len(roles) - 1
	}
	return Role(roles[i]), true
}

// ZoneNames lists every role a defender can be given by hand.
func ZoneNames() []string {
	names := make([]string, 0, len(roleDescriptions))
	for name := range roleDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
