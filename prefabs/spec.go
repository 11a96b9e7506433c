package prefabs

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/milk9111/ageofpanda/world"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// TuningFile is the prefab holding the gameplay constants.
const TuningFile = "tuning.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseSpec[T](filename, data)
}

// ParseSpec decodes data that did not come from the prefab directory, such
// as a file named on the command line.
func ParseSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// TuningSpec mirrors world.Tuning in YAML. Durations are milliseconds and
// the frame rate is given in ticks per second.
type TuningSpec struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	MaxVelocity  float64 `yaml:"max_velocity"`
	Acceleration float64 `yaml:"acceleration"`
	AccelDamping float64 `yaml:"accel_damping"`
	DecelFactor  float64 `yaml:"decel_factor"`
	StopEpsilon  float64 `yaml:"stop_epsilon"`

	Ground     float64 `yaml:"ground"`
	Ceiling    float64 `yaml:"ceiling"`
	LowerBound float64 `yaml:"lower_bound"`
	UpperBound float64 `yaml:"upper_bound"`

	AlmostGroundMin float64 `yaml:"almost_ground_min"`
	AlmostGroundMax float64 `yaml:"almost_ground_max"`

	SupportBandLeft  float64 `yaml:"support_band_left"`
	SupportBandRight float64 `yaml:"support_band_right"`
	StandOffset      float64 `yaml:"stand_offset"`

	ObstacleFallFactor   float64 `yaml:"obstacle_fall_factor"`
	ObstacleLandVelocity float64 `yaml:"obstacle_land_velocity"`
	ObstacleDurability   uint8   `yaml:"obstacle_durability"`
	AdjacencyTolerance   float64 `yaml:"adjacency_tolerance"`
	TileSize             float64 `yaml:"tile_size"`

	KickReachTop    float64 `yaml:"kick_reach_top"`
	KickReachBottom float64 `yaml:"kick_reach_bottom"`

	PlayerWidth  float64   `yaml:"player_width"`
	FrameWidths  []float64 `yaml:"frame_widths"`
	PlayerHeight float64   `yaml:"player_height"`
	FootOffset   float64   `yaml:"foot_offset"`
	TrapMargin   float64   `yaml:"trap_margin"`

	MaxHealth         int     `yaml:"max_health"`
	KnockbackDistance float64 `yaml:"knockback_distance"`
	KnockbackStep     float64 `yaml:"knockback_step"`

	WalkFrameTicks int `yaml:"walk_frame_ticks"`
	KickFrameTicks int `yaml:"kick_frame_ticks"`
	KickFrames     int `yaml:"kick_frames"`

	TPS                int `yaml:"tps"`
	HeartPeriodMS      int `yaml:"heart_period_ms"`
	BackgroundPeriodMS int `yaml:"background_period_ms"`
	TrapPeriodMS       int `yaml:"trap_period_ms"`
	FootstepPeriodMS   int `yaml:"footstep_period_ms"`
	GameOverFrames     int `yaml:"game_over_frames"`
	GameOverFrameTicks int `yaml:"game_over_frame_ticks"`
}

// NewTuningSpec fills a spec from t, so keys missing from a YAML file keep
// t's values.
func NewTuningSpec(t world.Tuning) TuningSpec {
	tps := 0
	if t.FrameDuration > 0 {
		tps = int(math.Round(float64(time.Second) / float64(t.FrameDuration)))
	}
	return TuningSpec{
		Gravity:              t.Gravity,
		JumpVelocity:         t.JumpVelocity,
		MaxVelocity:          t.MaxVelocity,
		Acceleration:         t.Acceleration,
		AccelDamping:         t.AccelDamping,
		DecelFactor:          t.DecelFactor,
		StopEpsilon:          t.StopEpsilon,
		Ground:               t.Ground,
		Ceiling:              t.Ceiling,
		LowerBound:           t.LowerBound,
		UpperBound:           t.UpperBound,
		AlmostGroundMin:      t.AlmostGroundMin,
		AlmostGroundMax:      t.AlmostGroundMax,
		SupportBandLeft:      t.SupportBandLeft,
		SupportBandRight:     t.SupportBandRight,
		StandOffset:          t.StandOffset,
		ObstacleFallFactor:   t.ObstacleFallFactor,
		ObstacleLandVelocity: t.ObstacleLandVelocity,
		ObstacleDurability:   t.ObstacleDurability,
		AdjacencyTolerance:   t.AdjacencyTolerance,
		TileSize:             t.TileSize,
		KickReachTop:         t.KickReachTop,
		KickReachBottom:      t.KickReachBottom,
		PlayerWidth:          t.PlayerWidth,
		FrameWidths:          append([]float64(nil), t.FrameWidths...),
		PlayerHeight:         t.PlayerHeight,
		FootOffset:           t.FootOffset,
		TrapMargin:           t.TrapMargin,
		MaxHealth:            t.MaxHealth,
		KnockbackDistance:    t.KnockbackDistance,
		KnockbackStep:        t.KnockbackStep,
		WalkFrameTicks:       t.WalkFrameTicks,
		KickFrameTicks:       t.KickFrameTicks,
		KickFrames:           t.KickFrames,
		TPS:                  tps,
		HeartPeriodMS:        int(t.HeartPeriod / time.Millisecond),
		BackgroundPeriodMS:   int(t.BackgroundPeriod / time.Millisecond),
		TrapPeriodMS:         int(t.TrapPeriod / time.Millisecond),
		FootstepPeriodMS:     int(t.FootstepPeriod / time.Millisecond),
		GameOverFrames:       t.GameOverFrames,
		GameOverFrameTicks:   t.GameOverFrameTicks,
	}
}

func (s TuningSpec) Validate() error {
	switch {
	case s.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidTuning, s.TPS)
	case s.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidTuning, s.Gravity)
	case s.ObstacleFallFactor <= 0 || s.ObstacleLandVelocity <= 0:
		return fmt.Errorf("%w: obstacle_fall_factor and obstacle_land_velocity must be positive", ErrInvalidTuning)
	case s.StopEpsilon <= 0:
		return fmt.Errorf("%w: stop_epsilon must be positive, got %v", ErrInvalidTuning, s.StopEpsilon)
	case s.AdjacencyTolerance < 0:
		return fmt.Errorf("%w: adjacency_tolerance must not be negative, got %v", ErrInvalidTuning, s.AdjacencyTolerance)
	case s.KnockbackDistance < 0:
		return fmt.Errorf("%w: knockback_distance must not be negative, got %v", ErrInvalidTuning, s.KnockbackDistance)
	case s.MaxVelocity <= 0:
		return fmt.Errorf("%w: max_velocity must be positive", ErrInvalidTuning)
	case s.DecelFactor <= 0 || s.DecelFactor >= 1:
		return fmt.Errorf("%w: decel_factor must be in (0, 1), got %v", ErrInvalidTuning, s.DecelFactor)
	case s.AccelDamping <= 0 || s.AccelDamping > 1:
		return fmt.Errorf("%w: accel_damping must be in (0, 1], got %v", ErrInvalidTuning, s.AccelDamping)
	case s.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive", ErrInvalidTuning)
	case s.MaxHealth <= 0:
		return fmt.Errorf("%w: max_health must be positive", ErrInvalidTuning)
	case s.KnockbackStep <= 0:
		return fmt.Errorf("%w: knockback_step must be positive", ErrInvalidTuning)
	case s.WalkFrameTicks <= 0 || s.KickFrameTicks <= 0 || s.KickFrames <= 0:
		return fmt.Errorf("%w: animation tick counts must be positive", ErrInvalidTuning)
	case s.ObstacleDurability > 2:
		return fmt.Errorf("%w: obstacle_durability must be at most 2, got %d", ErrInvalidTuning, s.ObstacleDurability)
	case s.Ceiling >= s.Ground:
		return fmt.Errorf("%w: ceiling %v must be above ground %v", ErrInvalidTuning, s.Ceiling, s.Ground)
	}
	return nil
}

func (s TuningSpec) Tuning() world.Tuning {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return world.Tuning{
		Gravity:              s.Gravity,
		JumpVelocity:         s.JumpVelocity,
		MaxVelocity:          s.MaxVelocity,
		Acceleration:         s.Acceleration,
		AccelDamping:         s.AccelDamping,
		DecelFactor:          s.DecelFactor,
		StopEpsilon:          s.StopEpsilon,
		Ground:               s.Ground,
		Ceiling:              s.Ceiling,
		LowerBound:           s.LowerBound,
		UpperBound:           s.UpperBound,
		AlmostGroundMin:      s.AlmostGroundMin,
		AlmostGroundMax:      s.AlmostGroundMax,
		SupportBandLeft:      s.SupportBandLeft,
		SupportBandRight:     s.SupportBandRight,
		StandOffset:          s.StandOffset,
		ObstacleFallFactor:   s.ObstacleFallFactor,
		ObstacleLandVelocity: s.ObstacleLandVelocity,
		ObstacleDurability:   s.ObstacleDurability,
		AdjacencyTolerance:   s.AdjacencyTolerance,
		TileSize:             s.TileSize,
		KickReachTop:         s.KickReachTop,
		KickReachBottom:      s.KickReachBottom,
		PlayerWidth:          s.PlayerWidth,
		FrameWidths:          append([]float64(nil), s.FrameWidths...),
		PlayerHeight:         s.PlayerHeight,
		FootOffset:           s.FootOffset,
		TrapMargin:           s.TrapMargin,
		MaxHealth:            s.MaxHealth,
		KnockbackDistance:    s.KnockbackDistance,
		KnockbackStep:        s.KnockbackStep,
		WalkFrameTicks:       s.WalkFrameTicks,
		KickFrameTicks:       s.KickFrameTicks,
		KickFrames:           s.KickFrames,
		FrameDuration:        time.Duration(math.Round(float64(time.Second) / float64(s.TPS))),
		HeartPeriod:          ms(s.HeartPeriodMS),
		BackgroundPeriod:     ms(s.BackgroundPeriodMS),
		TrapPeriod:           ms(s.TrapPeriodMS),
		FootstepPeriod:       ms(s.FootstepPeriodMS),
		GameOverFrames:       s.GameOverFrames,
		GameOverFrameTicks:   s.GameOverFrameTicks,
	}
}

// ParseTuning decodes data over the stock constants.
func ParseTuning(filename string, data []byte) (world.Tuning, error) {
	spec := NewTuningSpec(world.DefaultTuning())
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return world.Tuning{}, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	if err := spec.Validate(); err != nil {
		return world.Tuning{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec.Tuning(), nil
}

// LoadTuning reads a tuning prefab, from disk when present.
func LoadTuning(filename string) (world.Tuning, error) {
	if filename == "" {
		filename = TuningFile
	}
	data, err := Load(filename)
	if err != nil {
		return world.Tuning{}, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseTuning(filename, data)
}

// ReplaySpec is a scripted input sequence for the headless runner.
type ReplaySpec struct {
	Name  string       `yaml:"name"`
	Steps []ReplayStep `yaml:"steps"`
}

// ReplayStep holds Commands for Ticks consecutive ticks.
type ReplayStep struct {
	Ticks    int      `yaml:"ticks"`
	Commands []string `yaml:"commands"`
}

func LoadReplaySpec(filename string) (ReplaySpec, error) {
	return LoadSpec[ReplaySpec](filename)
}
