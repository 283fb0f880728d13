package catalog

import "strings"

const (
	GroupLinemen   = "linemen"
	GroupBacks     = "backs"
	GroupReceivers = "receivers"
)

var offenseGroups = map[string]string{
	"LT": GroupLinemen,
	"LG": GroupLinemen,
	"C":  GroupLinemen,
	"RG": GroupLinemen,
	"RT": GroupLinemen,
	"LS": GroupLinemen,

	"QB": GroupBacks,
	"RB": GroupBacks,
	"HB": GroupBacks,
	"TB": GroupBacks,
	"FB": GroupBacks,
	"PP": GroupBacks,
	"H":  GroupBacks,
	"P":  GroupBacks,
	"K":  GroupBacks,

	"WR":  GroupReceivers,
	"TE":  GroupReceivers,
	"W":   GroupReceivers,
	"GUN": GroupReceivers,
	"KC":  GroupReceivers,
}

var (
	defensiveLinemen = map[string]bool{"DE": true, "DT": true, "NT": true}
	linebackers      = map[string]bool{"OLB": true, "ILB": true, "MLB": true, "LB": true, "R": true}
	defensiveBacks   = map[string]bool{"CB": true, "FS": true, "SS": true, "S": true, "NB": true, "DB": true, "PR": true, "KR": true, "JAM": true}
)

func normalize(position string) string {
	return strings.ToUpper(strings.TrimSpace(position))
}

// PositionGroup classifies an offensive position. Defensive and unknown
// positions return "".
func PositionGroup(position string) string {
	return offenseGroups[normalize(position)]
}

func IsLineman(position string) bool {
	return PositionGroup(position) == GroupLinemen
}

// IsEligible reports whether an offensive position may legally catch a pass.
func IsEligible(position string) bool {
	group := PositionGroup(position)
	return group != "" && group != GroupLinemen
}

func IsDefensiveLineman(position string) bool {
	return defensiveLinemen[normalize(position)]
}

func IsLinebacker(position string) bool {
	return linebackers[normalize(position)]
}

func IsDefensiveBack(position string) bool {
	return defensiveBacks[normalize(position)]
}

// IsKnownPosition reports whether position belongs to any group.
func IsKnownPosition(position string) bool {
	return PositionGroup(position) != "" || IsDefensiveLineman(position) || IsLinebacker(position) || IsDefensiveBack(position)
}
