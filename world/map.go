package world

import (
	"cmp"
	"fmt"
	"slices"
)

// SpawnKind selects what a spawn trigger places.
type SpawnKind uint8

const (
	SpawnObstacle SpawnKind = iota
	SpawnTrap
)

func (k SpawnKind) String() string {
	if k == SpawnTrap {
		return "trap"
	}
	return "obstacle"
}

// SpawnTrigger places one obstacle or trap, once, when the player's x first
// reaches AtX. (X, Y) is the bottom-left corner of the spawned tile.
type SpawnTrigger struct {
	Kind  SpawnKind
	X, Y  float64
	AtX   float64
	Fired bool
}

// Map is one level: its obstacles, traps and the x at which play moves on
// to the next map.
type Map struct {
	ID       int
	Name     string
	Width    int
	Height   int
	TileSize float64

	// Obstacles is the active collection, in insertion order until a
	// landing re-sorts it by YBottom.
	Obstacles []*Obstacle
	Traps     []*Trap

	TransitionX    float64
	StartX, StartY float64

	Spawns []SpawnTrigger

	lastObstacleID ObstacleID
	lastTrapID     int
}

func NewMap(id int, name string, width, height int, tile float64) *Map {
	return &Map{ID: id, Name: name, Width: width, Height: height, TileSize: tile}
}

// NextObstacleID allocates an id that has never been used on this map.
func (m *Map) NextObstacleID() ObstacleID {
	m.lastObstacleID++
	return m.lastObstacleID
}

// AddObstacle appends o to the active collection, assigning an id when it
// has none.
func (m *Map) AddObstacle(o *Obstacle) error {
	if o.ID == 0 {
		o.ID = m.NextObstacleID()
	} else {
		if _, ok := m.Obstacle(o.ID); ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, o.ID)
		}
		if o.ID > m.lastObstacleID {
			m.lastObstacleID = o.ID
		}
	}
	o.Active = true
	m.Obstacles = append(m.Obstacles, o)
	return nil
}

func (m *Map) AddTrap(t *Trap) {
	m.lastTrapID++
	t.ID = m.lastTrapID
	t.Active = true
	m.Traps = append(m.Traps, t)
}

// Obstacle looks id up in the active collection.
func (m *Map) Obstacle(id ObstacleID) (*Obstacle, bool) {
	if id == 0 {
		return nil, false
	}
	for _, o := range m.Obstacles {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// RemoveObstacle deactivates id, drops it from the active collection and
// clears every adjacency link that pointed at it.
func (m *Map) RemoveObstacle(id ObstacleID) (*Obstacle, error) {
	idx := slices.IndexFunc(m.Obstacles, func(o *Obstacle) bool { return o.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownObstacle, id)
	}
	removed := m.Obstacles[idx]
	removed.Active = false
	m.Obstacles = slices.Delete(m.Obstacles, idx, idx+1)
	for _, o := range m.Obstacles {
		o.scrub(id)
	}
	return removed, nil
}

// SortObstacles orders the active collection by YBottom ascending, keeping
// insertion order between equal keys.
func (m *Map) SortObstacles() {
	slices.SortStableFunc(m.Obstacles, func(a, b *Obstacle) int {
		return cmp.Compare(a.YBottom, b.YBottom)
	})
}

// RebuildGraph recomputes adjacency for the whole active collection.
func (m *Map) RebuildGraph(tol float64) {
	BuildGraph(m.Obstacles, tol)
}
