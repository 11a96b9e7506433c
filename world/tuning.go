package world

import "time"

// Tuning holds every gameplay constant the simulation reads. Units are world
// units per tick unless noted otherwise.
type Tuning struct {
	Gravity      float64
	JumpVelocity float64
	MaxVelocity  float64
	Acceleration float64
	// AccelDamping is applied while accelerating under the cap and
	// DecelFactor while no movement command is held. They are separate on
	// purpose and must not be merged.
	AccelDamping float64
	DecelFactor  float64
	StopEpsilon  float64

	Ground     float64
	Ceiling    float64
	LowerBound float64
	UpperBound float64

	AlmostGroundMin float64
	AlmostGroundMax float64

	SupportBandLeft  float64
	SupportBandRight float64
	StandOffset      float64

	ObstacleFallFactor   float64
	ObstacleLandVelocity float64
	ObstacleDurability   uint8
	AdjacencyTolerance   float64
	TileSize             float64

	KickReachTop    float64
	KickReachBottom float64

	PlayerWidth  float64
	FrameWidths  []float64
	PlayerHeight float64
	FootOffset   float64
	TrapMargin   float64

	MaxHealth         int
	KnockbackDistance float64
	KnockbackStep     float64

	WalkFrameTicks int
	KickFrameTicks int
	KickFrames     int

	FrameDuration      time.Duration
	HeartPeriod        time.Duration
	BackgroundPeriod   time.Duration
	TrapPeriod         time.Duration
	FootstepPeriod     time.Duration
	GameOverFrames     int
	GameOverFrameTicks int
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      0.5,
		JumpVelocity: -5.0,
		MaxVelocity:  2.0,
		Acceleration: 0.1,
		AccelDamping: 0.98,
		DecelFactor:  0.95,
		StopEpsilon:  0.1,

		Ground:     205.0,
		Ceiling:    40.0,
		LowerBound: 0.0,
		UpperBound: 225.0,

		AlmostGroundMin: 140.0,
		AlmostGroundMax: 160.0,

		SupportBandLeft:  5.0,
		SupportBandRight: 10.0,
		StandOffset:      10.0,

		ObstacleFallFactor:   3.0,
		ObstacleLandVelocity: 16.0,
		ObstacleDurability:   2,
		AdjacencyTolerance:   2.0,
		TileSize:             16.0,

		KickReachTop:    25.0,
		KickReachBottom: 25.0,

		PlayerWidth:  32.0,
		PlayerHeight: 32.0,
		FootOffset:   10.0,
		TrapMargin:   2.0,

		MaxHealth:         3,
		KnockbackDistance: 24.0,
		KnockbackStep:     2.0,

		WalkFrameTicks: 3,
		KickFrameTicks: 8,
		KickFrames:     2,

		FrameDuration:      16666667 * time.Nanosecond,
		HeartPeriod:        500 * time.Millisecond,
		BackgroundPeriod:   time.Second,
		TrapPeriod:         250 * time.Millisecond,
		FootstepPeriod:     300 * time.Millisecond,
		GameOverFrames:     4,
		GameOverFrameTicks: 12,
	}
}

// SpriteWidth returns the width of walk frame idx, falling back to
// PlayerWidth when no per-frame width is configured.
func (t Tuning) SpriteWidth(idx int) float64 {
	if idx >= 0 && idx < len(t.FrameWidths) && t.FrameWidths[idx] > 0 {
		return t.FrameWidths[idx]
	}
	return t.PlayerWidth
}
