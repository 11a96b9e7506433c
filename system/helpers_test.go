package system

import "github.com/milk9111/ageofpanda/world"

func newTestState(maps ...*world.Map) *world.GameState {
	if len(maps) == 0 {
		maps = []*world.Map{world.NewMap(1, "test", 30, 14, 16)}
	}
	return world.NewGameState(maps, world.DefaultTuning())
}

func addObstacle(m *world.Map, xLeft, yTop, xRight, yBottom float64, durability uint8) *world.Obstacle {
	o := world.NewObstacle(xLeft, yTop, xRight, yBottom, durability)
	if err := m.AddObstacle(o); err != nil {
		panic(err)
	}
	return o
}

func soundIDs(q *SoundQueue) []SoundID {
	var ids []SoundID
	for _, s := range q.Drain() {
		ids = append(ids, s.ID)
	}
	return ids
}

func sameSounds(got, want []SoundID) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
