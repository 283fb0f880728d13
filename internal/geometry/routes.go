package geometry

import (
	"sort"
	"strconv"
	"strings"

	"github.com/omarshaarawi/playbook/internal/models"
)

// waypoint is one bend of a route. Out is the horizontal offset away from the
// field centre relative to the start x. Depth is measured upfield from the
// line of scrimmage, or from the start point when fromStart is set.
type waypoint struct {
	out       float64
	depth     float64
	fromStart bool
}

const (
	RouteGo         = "Go"
	RouteFade       = "Fade"
	RouteFlat       = "Flat"
	RouteScreen     = "Screen"
	RoutePost       = "Post"
	RouteCorner     = "Corner"
	RouteOut        = "Out"
	RouteQuickOut   = "Quick Out"
	RouteIn         = "In"
	RouteDig        = "Dig"
	RouteSlant      = "Slant"
	RouteHitch      = "Hitch"
	RouteCurl       = "Curl"
	RouteComeback   = "Comeback"
	RouteSeam       = "Seam"
	RouteDrag       = "Drag"
	RouteSwing      = "Swing"
	RouteWheel      = "Wheel"
	RoutePostCorner = "Post-Corner"
)

var routeTable = map[string][]waypoint{
	RouteGo:         {{0, 160, false}},
	RouteFade:       {{30, 160, false}},
	RouteFlat:       {{80, 5, false}},
	RouteScreen:     {{40, -15, true}},
	RoutePost:       {{0, 80, false}, {-60, 160, false}},
	RouteCorner:     {{0, 80, false}, {60, 140, false}},
	RouteOut:        {{0, 60, false}, {70, 60, false}},
	RouteQuickOut:   {{0, 25, false}, {50, 25, false}},
	RouteIn:         {{0, 60, false}, {-90, 60, false}},
	RouteDig:        {{0, 80, false}, {-110, 80, false}},
	RouteSlant:      {{0, 15, false}, {-70, 70, false}},
	RouteHitch:      {{0, 50, false}, {-5, 40, false}},
	RouteCurl:       {{0, 70, false}, {-15, 55, false}},
	RouteComeback:   {{0, 85, false}, {20, 65, false}},
	RouteSeam:       {{-10, 40, false}, {-10, 160, false}},
	RouteDrag:       {{0, 15, false}, {-150, 15, false}},
	RouteSwing:      {{40, -5, true}, {90, 5, false}},
	RouteWheel:      {{50, 10, false}, {70, 40, false}, {70, 150, false}},
	RoutePostCorner: {{0, 70, false}, {-25, 100, false}, {50, 150, false}},
}

var routeAliases = map[string]string{
	"in/dig":        RouteIn,
	"curl/comeback": RouteCurl,
	"streak":        RouteGo,
	"fly":           RouteGo,
	"vertical":      RouteGo,
}

// CanonicalRoute resolves a route label to its table key.
func CanonicalRoute(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := routeAliases[key]; ok {
		return alias, true
	}
	for canonical := range routeTable {
		if strings.ToLower(canonical) == key {
			return canonical, true
		}
	}
	return "", false
}

// RouteNames lists every route in the table, sorted.
func RouteNames() []string {
	names := make([]string, 0, len(routeTable))
	for name := range routeTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RoutePath builds the polyline for a named route starting at start. Unknown
// names return just the start point.
func RoutePath(start models.Point, routeName string, losY float64, isLeftOfCenter bool) []models.Point {
	points := []models.Point{start}
	name, ok := CanonicalRoute(routeName)
	if !ok {
		return points
	}

	mirror := 1.0
	if isLeftOfCenter {
		mirror = -1
	}
	for _, w := range routeTable[name] {
		y := losY - w.depth
		if w.fromStart {
			y = start.Y - w.depth
		}
		points = append(points, models.Point{X: clampX(start.X + mirror*w.out), Y: y})
	}
	return points
}

// RunLabel is the assignment label for a ball carrier running to hole.
func RunLabel(hole int) string {
	return "Run " + strconv.Itoa(hole)
}

// ParseRun extracts the hole number from a run assignment label.
func ParseRun(label string) (int, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(label), "Run ")
	if !ok {
		return 0, false
	}
	hole, err := strconv.Atoi(rest)
	if err != nil || hole < 0 || hole > maxHole {
		return 0, false
	}
	return hole, true
}

// RunPath takes a ball carrier from start through the hole and 40 units past
// the line.
func RunPath(start models.Point, hole int, line []models.Point, centerX, losY float64) []models.Point {
	target := HolePosition(hole, line, centerX, losY)
	return []models.Point{start, target, {X: target.X, Y: losY - 40}}
}
