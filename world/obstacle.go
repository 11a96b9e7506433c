package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ageofpanda/common"
)

// ObstacleID identifies an obstacle for the lifetime of its map. Zero means
// "no obstacle".
type ObstacleID uint32

// Obstacle is a destructible, gravity-affected box.
type Obstacle struct {
	ID ObstacleID

	XLeft, XRight float64
	YTop, YBottom float64

	VelocityY  float64
	Falling    bool
	Active     bool
	Durability uint8

	Left, Right, Over, Under ObstacleID

	IsLeftmost, IsRightmost bool
	IsTop, IsBottom         bool
}

// NewObstacle returns an active obstacle covering the given box.
func NewObstacle(xLeft, yTop, xRight, yBottom float64, durability uint8) *Obstacle {
	return &Obstacle{
		XLeft:      xLeft,
		XRight:     xRight,
		YTop:       yTop,
		YBottom:    yBottom,
		Active:     true,
		Durability: durability,
	}
}

// NewTileObstacle returns an obstacle one tile wide whose bottom-left corner
// sits at (x, yBottom).
func NewTileObstacle(x, yBottom, tile float64, durability uint8) *Obstacle {
	return NewObstacle(x, yBottom-tile, x+tile, yBottom, durability)
}

func (o *Obstacle) Box() cp.BB {
	return common.Box(o.XLeft, o.YTop, o.XRight, o.YBottom)
}

// References reports whether any adjacency slot points at id.
func (o *Obstacle) References(id ObstacleID) bool {
	return id != 0 && (o.Left == id || o.Right == id || o.Over == id || o.Under == id)
}

func (o *Obstacle) scrub(id ObstacleID) {
	if o.Left == id {
		o.Left = 0
		o.IsLeftmost = true
	}
	if o.Right == id {
		o.Right = 0
		o.IsRightmost = true
	}
	if o.Over == id {
		o.Over = 0
		o.IsTop = true
	}
	if o.Under == id {
		o.Under = 0
		o.IsBottom = true
	}
}

// Trap is a static hazard. Only Active ever changes after placement.
type Trap struct {
	ID int

	XLeft, XRight float64
	YTop, YBottom float64

	Active bool
}

// NewTileTrap returns an active trap one tile wide whose bottom-left corner
// sits at (x, yBottom).
func NewTileTrap(x, yBottom, tile float64) *Trap {
	return &Trap{
		XLeft:   x,
		XRight:  x + tile,
		YTop:    yBottom - tile,
		YBottom: yBottom,
		Active:  true,
	}
}

func (t *Trap) Box() cp.BB {
	return common.Box(t.XLeft, t.YTop, t.XRight, t.YBottom)
}
