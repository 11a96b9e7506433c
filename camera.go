package main

import (
	"math"

	"github.com/milk9111/ageofpanda/common"
)

// FixedPlayerX is the screen column the player is drawn at; the world
// scrolls past it.
const FixedPlayerX = 109

// Camera follows the player along x. Only the horizontal axis scrolls.
type Camera struct {
	X float64

	screenW int
	// smoothing factor (0..1]. 1 snaps to the target every tick.
	smooth float64
}

func NewCamera(screenW int, smooth float64) *Camera {
	c := &Camera{screenW: screenW}
	c.SetSmooth(smooth)
	return c
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = math.Min(math.Max(f, 0.01), 1)
}

// Update moves the camera toward targetX. Call from the fixed-rate Update
// loop to get consistent smoothing.
func (c *Camera) Update(targetX float64) {
	c.X = common.Lerp(c.X, targetX, c.smooth)
	if math.Abs(c.X-targetX) < 0.01 {
		c.X = targetX
	}
}

// SnapTo places the camera on x immediately, e.g. after a map change.
func (c *Camera) SnapTo(x float64) {
	c.X = x
}

// ScreenX maps a world x to a screen column.
func (c *Camera) ScreenX(worldX float64) float64 {
	return worldX - c.X + FixedPlayerX
}

// View is the world-space strip currently on screen.
func (c *Camera) View(screenH int) Rect {
	return Rect{
		X:      float32(c.X - FixedPlayerX),
		Y:      0,
		Width:  float32(c.screenW),
		Height: float32(screenH),
	}
}
