package models

// Field dimensions in abstract field-space units shared with the renderer.
const (
	FieldWidth    = 700.0
	FieldHeight   = 400.0
	FieldCenterX  = 350.0
	LineOfScrimmY = 200.0
)

const (
	SideOffense = "offense"
	SideDefense = "defense"

	ODKOffense     = "O"
	ODKDefense     = "D"
	ODKSpecialTeam = "K"
)

const (
	CustomRoute  = "Custom Route"
	BlockLabel   = "Block"
	DefaultBlock = "Run Block"
)

const (
	MotionNone   = "None"
	MotionJet    = "Jet"
	MotionOrbit  = "Orbit"
	MotionAcross = "Across"
	MotionReturn = "Return"
	MotionShift  = "Shift"

	DirectionIn  = "toward-center"
	DirectionOut = "away-from-center"
)

const (
	DepthDeep  = "deep"
	DepthUnder = "underneath"
	DepthMan   = "man"
	RoleMan    = "Man"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Path is a polyline, optionally bent through a single quadratic control point
// between its first and last points.
type Path struct {
	Points  []Point `json:"points"`
	Control *Point  `json:"control,omitempty"`
}

type Player struct {
	ID       string `json:"id"`
	Position string `json:"position"`
	Label    string `json:"label,omitempty"`
	Point    Point  `json:"coordinate"`
	Side     string `json:"side"`

	Assignment     string `json:"assignment,omitempty"`
	BlockType      string `json:"blockType,omitempty"`
	BlockDirection *Point `json:"blockDirection,omitempty"`

	MotionType      string `json:"motionType,omitempty"`
	MotionDirection string `json:"motionDirection,omitempty"`
	MotionEndpoint  *Point `json:"motionEndpoint,omitempty"`
	MotionControl   *Point `json:"motionControl,omitempty"`
	MotionManual    bool   `json:"motionManual,omitempty"`

	CoverageRole        string `json:"coverageRole,omitempty"`
	CoverageDepth       string `json:"coverageDepth,omitempty"`
	CoverageDescription string `json:"coverageDescription,omitempty"`
	BlitzGap            string `json:"blitzGap,omitempty"`
	ZoneEndpoint        *Point `json:"zoneEndpoint,omitempty"`

	IsPrimary bool `json:"isPrimary,omitempty"`
	IsDummy   bool `json:"-"`
}

// InMotion reports whether the player moves before the snap.
func (p *Player) InMotion() bool {
	return p.MotionType != "" && p.MotionType != MotionNone
}

// SnapPoint is where the player stands when the ball is snapped.
func (p *Player) SnapPoint() Point {
	if p.InMotion() && p.MotionEndpoint != nil {
		return *p.MotionEndpoint
	}
	return p.Point
}

// Clone returns a copy that shares no pointers with p.
func (p Player) Clone() Player {
	p.BlockDirection = clonePoint(p.BlockDirection)
	p.MotionEndpoint = clonePoint(p.MotionEndpoint)
	p.MotionControl = clonePoint(p.MotionControl)
	p.ZoneEndpoint = clonePoint(p.ZoneEndpoint)
	return p
}

func clonePoint(p *Point) *Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

type Route struct {
	ID         string  `json:"id"`
	PlayerID   string  `json:"playerId"`
	Points     []Point `json:"points"`
	Assignment string  `json:"assignment,omitempty"`
	IsPrimary  bool    `json:"isPrimary,omitempty"`
	Custom     bool    `json:"custom,omitempty"`
}

func (r Route) Clone() Route {
	r.Points = append([]Point(nil), r.Points...)
	return r
}

type FormationSlot struct {
	Label    string  `toml:"label"`
	Position string  `toml:"position"`
	DX       float64 `toml:"dx"`
	DY       float64 `toml:"dy"`
}

// Formation is a named layout relative to the field centre and the line of
// scrimmage. Positive DY is toward the offense's own backfield.
type Formation struct {
	Name  string          `toml:"name"`
	ODK   string          `toml:"odk"`
	Side  string          `toml:"side"`
	Slots []FormationSlot `toml:"slots"`
}

type CoverageRole struct {
	Name        string
	Depth       string
	Description string
}
