package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/playbook/internal/models"
)

func TestRoutePathWaypointCounts(t *testing.T) {
	start := models.Point{X: 500, Y: 212}
	want := map[string]int{
		RouteGo:         2,
		RouteFade:       2,
		RouteFlat:       2,
		RouteScreen:     2,
		RoutePost:       3,
		RouteCorner:     3,
		RouteOut:        3,
		RouteQuickOut:   3,
		RouteIn:         3,
		RouteDig:        3,
		RouteSlant:      3,
		RouteHitch:      3,
		RouteCurl:       3,
		RouteComeback:   3,
		RouteSeam:       3,
		RouteDrag:       3,
		RouteSwing:      3,
		RouteWheel:      4,
		RoutePostCorner: 4,
	}
	require.Len(t, want, len(RouteNames()), "every route in the table needs a pinned count")

	for name, count := range want {
		path := RoutePath(start, name, models.LineOfScrimmY, false)
		assert.Len(t, path, count, name)
		assert.Equal(t, start, path[0], "%s must begin at the player", name)
	}
}

func TestRoutePathDirections(t *testing.T) {
	start := models.Point{X: 500, Y: 212}
	los := models.LineOfScrimmY

	goRoute := RoutePath(start, RouteGo, los, false)
	assert.Equal(t, models.Point{X: 500, Y: 40}, goRoute[1])

	post := RoutePath(start, RoutePost, los, false)
	assert.Equal(t, models.Point{X: 500, Y: 120}, post[1])
	assert.Equal(t, models.Point{X: 440, Y: 40}, post[2], "post breaks toward the middle")

	corner := RoutePath(start, RouteCorner, los, false)
	assert.Greater(t, corner[2].X, start.X, "corner breaks to the sideline")

	out := RoutePath(start, RouteOut, los, false)
	assert.Equal(t, out[1].Y, out[2].Y, "out cuts flat")
	assert.Greater(t, out[2].X, out[1].X)

	in := RoutePath(start, RouteIn, los, false)
	assert.Less(t, in[2].X, in[1].X)

	slant := RoutePath(start, RouteSlant, los, false)
	assert.Less(t, slant[2].X, start.X)
	assert.Less(t, slant[2].Y, slant[1].Y)

	hitch := RoutePath(start, RouteHitch, los, false)
	assert.Greater(t, hitch[2].Y, hitch[1].Y, "hitch comes back to the ball")

	screen := RoutePath(start, RouteScreen, los, false)
	assert.Greater(t, screen[1].Y, start.Y, "screen releases behind the line")

	wheel := RoutePath(start, RouteWheel, los, false)
	assert.Equal(t, wheel[2].X, wheel[3].X, "wheel turns straight upfield")
}

func TestRoutePathMirrorsLeftOfCenter(t *testing.T) {
	start := models.Point{X: 350, Y: 240}
	for _, name := range RouteNames() {
		right := RoutePath(start, name, models.LineOfScrimmY, false)
		left := RoutePath(start, name, models.LineOfScrimmY, true)
		require.Len(t, left, len(right), name)
		for i := range right {
			assert.InDelta(t, -(right[i].X - start.X), left[i].X-start.X, 1e-9, "%s point %d", name, i)
			assert.InDelta(t, right[i].Y, left[i].Y, 1e-9, "%s point %d", name, i)
		}
	}
}

func TestRoutePathUnknownIsSinglePoint(t *testing.T) {
	start := models.Point{X: 420, Y: 230}
	assert.Equal(t, []models.Point{start}, RoutePath(start, "Double Move Special", models.LineOfScrimmY, false))
	assert.Equal(t, []models.Point{start}, RoutePath(start, "", models.LineOfScrimmY, true))
}

func TestCanonicalRouteAliases(t *testing.T) {
	for label, want := range map[string]string{
		"in/dig":        RouteIn,
		"Curl/Comeback": RouteCurl,
		"  post ":       RoutePost,
		"STREAK":        RouteGo,
	} {
		got, ok := CanonicalRoute(label)
		require.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
	_, ok := CanonicalRoute("banana")
	assert.False(t, ok)
}

func TestParseRun(t *testing.T) {
	hole, ok := ParseRun(RunLabel(4))
	require.True(t, ok)
	assert.Equal(t, 4, hole)

	for _, bad := range []string{"Run", "Run 8", "Run -1", "Go", "Run x"} {
		_, ok := ParseRun(bad)
		assert.False(t, ok, bad)
	}
}

func TestRunPathGoesThroughHole(t *testing.T) {
	line := []models.Point{{X: 290, Y: 212}, {X: 320, Y: 212}, {X: 350, Y: 212}, {X: 380, Y: 212}, {X: 410, Y: 212}}
	start := models.Point{X: 350, Y: 260}

	path := RunPath(start, 2, line, models.FieldCenterX, models.LineOfScrimmY)
	require.Len(t, path, 3)
	assert.Equal(t, start, path[0])
	assert.Equal(t, models.Point{X: 395, Y: 200}, path[1])
	assert.Equal(t, models.Point{X: 395, Y: 160}, path[2])
}
