package world

// Direction is the way the player faces.
type Direction uint8

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// SupportState is the player's vertical relationship to the world.
type SupportState uint8

const (
	OnGround SupportState = iota
	OnObstacle
	InAir
)

func (s SupportState) String() string {
	switch s {
	case OnGround:
		return "on_ground"
	case OnObstacle:
		return "on_obstacle"
	default:
		return "in_air"
	}
}

// Walk cycle frame ranges. Right-facing frames are 0..3, left-facing 4..7.
const (
	RightWalkFirst = 0
	RightWalkLast  = 3
	LeftWalkFirst  = 4
	LeftWalkLast   = 7
)

type Player struct {
	X, Y   float64
	VX, VY float64

	Direction Direction
	// State, OnGround and OnObstacle are only written through SetSupport.
	State      SupportState
	OnGround   bool
	OnObstacle bool

	AlmostGround     bool
	AboveObstacle    bool
	IsJumping        bool
	ObstacleDetected bool

	Health     int
	Invincible bool
	GameOver   bool

	IsKicking      bool
	KickFrame      int
	KickFrameTimer int

	RightIncrement  int
	LeftIncrement   int
	RightFrameCount int
	LeftFrameCount  int

	LastCommand string
}

// NewPlayer returns a grounded, full-health player at (x, y).
func NewPlayer(x, y float64, t Tuning) Player {
	p := Player{
		X:              x,
		Y:              y,
		Direction:      Right,
		Health:         t.MaxHealth,
		RightIncrement: RightWalkFirst,
		LeftIncrement:  LeftWalkFirst,
	}
	p.SetSupport(OnGround)
	return p
}

// SetSupport moves the player into state s and keeps the boolean flags in
// agreement with it.
func (p *Player) SetSupport(s SupportState) {
	p.State = s
	p.OnGround = s == OnGround
	p.OnObstacle = s == OnObstacle
}

// Supported reports whether gravity is currently cancelled.
func (p *Player) Supported() bool {
	return p.State == OnGround || p.State == OnObstacle
}

// WalkFrame returns the walk-cycle frame for the current direction.
func (p *Player) WalkFrame() int {
	if p.Direction == Left {
		return p.LeftIncrement
	}
	return p.RightIncrement
}
