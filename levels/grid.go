package levels

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGrid = errors.New("levels: invalid grid")
	ErrUnknownTile = errors.New("levels: unknown tile")
)

// Tile is one cell of a level grid.
type Tile byte

const (
	TileSky      Tile = 'O'
	TileGrass    Tile = 'G'
	TileObstacle Tile = 'X'
	TileTrap     Tile = 'T'
)

// Grid is a parsed, rectangular tile grid. Row 0 is the top row.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidGrid)
	}
	width := len(rows[0])
	g := &Grid{Width: width, Height: len(rows), Tiles: make([][]Tile, len(rows))}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidGrid, y, len(row), width)
		}
		g.Tiles[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			t := Tile(row[x])
			switch t {
			case TileSky, TileGrass, TileObstacle, TileTrap:
			default:
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrUnknownTile, row[x], y, x)
			}
			g.Tiles[y][x] = t
		}
	}
	return g, nil
}

func (g *Grid) At(x, y int) Tile {
	if y < 0 || y >= g.Height || x < 0 || x >= g.Width {
		return TileSky
	}
	return g.Tiles[y][x]
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.Tiles {
		for _, cell := range row {
			if cell == t {
				n++
			}
		}
	}
	return n
}
