package levels

import (
	"fmt"

	"github.com/milk9111/ageofpanda/prefabs"
	"github.com/milk9111/ageofpanda/world"
)

// BuildMap turns a level into a playable map: one obstacle or trap per grid
// cell, spawn triggers from the file and its script, and a fresh adjacency
// graph. A tile in column x, row y has its bottom edge at y*tile.
func BuildMap(id int, lvl *Level, t world.Tuning) (*world.Map, error) {
	grid, err := ParseGrid(lvl.Grid)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", lvl.Name, err)
	}
	tile := lvl.TileSize
	if tile <= 0 {
		tile = t.TileSize
	}

	m := world.NewMap(id, lvl.Name, grid.Width, grid.Height, tile)
	m.TransitionX = lvl.TransitionX
	m.StartX = lvl.StartX
	m.StartY = lvl.StartY

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			left, bottom := float64(x)*tile, float64(y)*tile
			switch grid.At(x, y) {
			case TileObstacle:
				if err := m.AddObstacle(world.NewTileObstacle(left, bottom, tile, t.ObstacleDurability)); err != nil {
					return nil, fmt.Errorf("levels: %s: %w", lvl.Name, err)
				}
			case TileTrap:
				m.AddTrap(world.NewTileTrap(left, bottom, tile))
			}
		}
	}

	specs := append([]prefabs.SpawnSpec(nil), lvl.Spawns...)
	if lvl.SpawnScript != "" {
		scripted, err := prefabs.RunSpawnScript(lvl.SpawnScript, prefabs.SpawnEnv{
			MapID:    id,
			Width:    grid.Width,
			Height:   grid.Height,
			TileSize: int(tile),
			Ground:   t.Ground,
		})
		if err != nil {
			return nil, fmt.Errorf("levels: %s: %w", lvl.Name, err)
		}
		specs = append(specs, scripted...)
	}
	m.Spawns, err = prefabs.Triggers(specs)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", lvl.Name, err)
	}

	m.RebuildGraph(t.AdjacencyTolerance)
	return m, nil
}

// LoadAll builds every embedded level in play order. Map ids start at 1.
func LoadAll(t world.Tuning) ([]*world.Map, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}
	maps := make([]*world.Map, 0, len(names))
	for i, name := range names {
		lvl, err := Load(name)
		if err != nil {
			return nil, err
		}
		m, err := BuildMap(i+1, lvl, t)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	return maps, nil
}

// Index returns the position of the map called name, or -1.
func Index(maps []*world.Map, name string) int {
	for i, m := range maps {
		if m != nil && m.Name == name {
			return i
		}
	}
	return -1
}
