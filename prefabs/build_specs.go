package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/ageofpanda/world"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpawn = errors.New("prefabs: invalid spawn")

// DecodeComponentSpec converts loosely typed data, such as a decoded script
// result, into T by round-tripping it through YAML.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// SpawnSpec describes one runtime spawn. (X, Y) is the bottom-left corner
// of the spawned tile; the spawn fires when the player's x reaches AtX.
type SpawnSpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	AtX  float64 `yaml:"at_x"`
}

func (s SpawnSpec) Trigger() (world.SpawnTrigger, error) {
	var kind world.SpawnKind
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case "", "obstacle", "box":
		kind = world.SpawnObstacle
	case "trap":
		kind = world.SpawnTrap
	default:
		return world.SpawnTrigger{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidSpawn, s.Kind)
	}
	if s.X < 0 || s.Y <= 0 || s.AtX < 0 {
		return world.SpawnTrigger{}, fmt.Errorf("%w: %s at (%v, %v) trigger %v", ErrInvalidSpawn, kind, s.X, s.Y, s.AtX)
	}
	return world.SpawnTrigger{Kind: kind, X: s.X, Y: s.Y, AtX: s.AtX}, nil
}

// Triggers converts specs to spawn triggers, stopping at the first bad one.
func Triggers(specs []SpawnSpec) ([]world.SpawnTrigger, error) {
	out := make([]world.SpawnTrigger, 0, len(specs))
	for i, s := range specs {
		trig, err := s.Trigger()
		if err != nil {
			return nil, fmt.Errorf("spawn %d: %w", i, err)
		}
		out = append(out, trig)
	}
	return out, nil
}
