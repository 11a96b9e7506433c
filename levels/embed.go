package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/ageofpanda/prefabs"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Level is one level file: a tile grid plus the spawns that are placed
// while it is played.
type Level struct {
	Name        string              `yaml:"name"`
	TileSize    float64             `yaml:"tile_size"`
	TransitionX float64             `yaml:"transition_x"`
	StartX      float64             `yaml:"start_x"`
	StartY      float64             `yaml:"start_y"`
	Spawns      []prefabs.SpawnSpec `yaml:"spawns,omitempty"`
	SpawnScript string              `yaml:"spawn_script,omitempty"`
	Grid        []string            `yaml:"grid"`
}

func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, filepath.Ext(clean))
	}
	return &lvl, nil
}

// Names lists the embedded levels in play order.
func Names() ([]string, error) {
	names, err := fs.Glob(LevelsFS, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
