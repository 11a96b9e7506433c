package world

import "errors"

var (
	ErrNoMap           = errors.New("world: current map index out of range")
	ErrUnknownObstacle = errors.New("world: obstacle is not in the active collection")
	ErrDuplicateID     = errors.New("world: duplicate obstacle id")
)
