package prefabs

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// SpawnEnv is what a spawn script can see about the map it is filling.
type SpawnEnv struct {
	MapID    int
	Width    int
	Height   int
	TileSize int
	Ground   float64
}

// RunSpawnScript runs a tengo script and returns the spawns it leaves in its
// global "spawns" array. Each element is a map with kind, x, y and at_x.
func RunSpawnScript(name string, env SpawnEnv) ([]SpawnSpec, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return runSpawnSource(name, src, env)
}

func runSpawnSource(name string, src []byte, env SpawnEnv) ([]SpawnSpec, error) {
	script := tengo.NewScript(src)
	_ = script.Add("map_id", env.MapID)
	_ = script.Add("map_width", env.Width)
	_ = script.Add("map_height", env.Height)
	_ = script.Add("tile", env.TileSize)
	_ = script.Add("ground", env.Ground)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("prefabs: run %s: %w", name, err)
	}
	if !compiled.IsDefined("spawns") {
		return nil, nil
	}

	raw, ok := objectToAny(compiled.Get("spawns").Object()).([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: spawns must be an array", ErrInvalidSpawn, name)
	}
	specs := make([]SpawnSpec, 0, len(raw))
	for i, item := range raw {
		if _, ok := item.(map[string]any); !ok {
			return nil, fmt.Errorf("%w: %s: spawns[%d] must be a map", ErrInvalidSpawn, name, i)
		}
		spec, err := DecodeComponentSpec[SpawnSpec](item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: spawns[%d]: %v", ErrInvalidSpawn, name, i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}

	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.ImmutableArray:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return strings.Trim(v.String(), "\"")
	}
}
